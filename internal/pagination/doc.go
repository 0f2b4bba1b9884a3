// Package pagination provides the page arithmetic used by every pagenav renderer.
//
// This package contains the counter shared by the series builder, link formatter,
// header emitter and CLI, including:
//   - Pagination: counted pagination (total pages, offsets, item ranges, prev/next)
//   - Countless: pagination without a total count, driven by a "has more" flag
//   - Navigator: the read-only view both variants expose to renderers
//   - Meta: serialisable metadata for JSON and YAML output
//
// Out-of-range pages are reported as *RangeError unless an OverflowMode
// recovers from them.
package pagination
