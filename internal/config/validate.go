package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/pagenav/internal/headers"
	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
)

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints, then compiles steps, header names and
// the overflow mode.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.SeriesSteps(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.HeaderNames().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.OverflowMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SeriesSteps compiles the steps section.
func (c *Config) SeriesSteps() (series.Steps, error) {
	sizes := make(map[int]series.Size, len(c.Steps))
	for minPages, tuple := range c.Steps {
		size, err := series.SizeFromSlice(tuple)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %d: %w", minPages, err)
		}
		sizes[minPages] = size
	}
	return series.NewSteps(sizes)
}

// HeaderNames returns the header names with disabled entries emptied.
func (c *Config) HeaderNames() headers.Names {
	name := func(s string) string {
		if s == DisabledHeader {
			return ""
		}
		return s
	}
	return headers.Names{
		Page:  name(c.Headers.Page),
		Limit: name(c.Headers.Limit),
		Count: name(c.Headers.Count),
		Pages: name(c.Headers.Pages),
	}
}

// OverflowMode parses the overflow setting.
func (c *Config) OverflowMode() (pagination.OverflowMode, error) {
	return pagination.ParseOverflowMode(c.Overflow)
}

// LocaleSpecs lists the dictionaries to load, with Locale first so that it
// serves as the fallback.
func (c *Config) LocaleSpecs() []i18n.LocaleSpec {
	specs := []i18n.LocaleSpec{{Locale: c.Locale}}
	for _, lf := range c.Locales {
		if lf.Locale == c.Locale {
			specs[0].Path = lf.File
			continue
		}
		specs = append(specs, i18n.LocaleSpec{Locale: lf.Locale, Path: lf.File})
	}
	return specs
}
