// Package urlbuilder merges a target page number into the current request's
// path, query parameters and fragment.
package urlbuilder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageParam is the query parameter carrying the page number.
const DefaultPageParam = "page"

// Placeholder stands for the page number in URL templates.
const Placeholder = "__pagenav_page__"

// Common errors.
var (
	ErrEmptyPageParam = errors.New("page param cannot be empty")
	ErrNoPageParam    = errors.New("url has no page param")
	ErrInvalidPage    = errors.New("invalid page number in url")
)

// URLFunc returns the URL of a page. It is the collaborator links and headers consume.
type URLFunc func(page int) string

// ParamsFunc replaces the whole parameter mapping just before encoding.
type ParamsFunc func(Params) Params

// Request is the part of the current request a URL is built from.
type Request struct {
	Scheme string
	// Host includes the port when it is not the default one.
	Host     string
	Path     string
	Params   Params
	// Fragment is kept escaped, as it appears in a URL.
	Fragment string
}

// RequestFromHTTP extracts a Request from an incoming *http.Request.
func RequestFromHTTP(r *http.Request) Request {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return Request{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		Params:   ParseQuery(r.URL.RawQuery),
		Fragment: r.URL.EscapedFragment(),
	}
}

// ParseRequest parses an absolute or relative URL string into a Request.
func ParseRequest(raw string) (Request, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Request{}, fmt.Errorf("parsing request url: %w", err)
	}
	return Request{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.EscapedPath(),
		Params:   ParseQuery(u.RawQuery),
		Fragment: u.EscapedFragment(),
	}, nil
}

// Builder builds page URLs. It is immutable and safe for concurrent use.
type Builder struct {
	pageParam string
	params    Params
	override  ParamsFunc
	fragment  string
}

// Option configures a Builder.
type Option func(*Builder)

// WithPageParam sets the name of the page query parameter.
func WithPageParam(name string) Option {
	return func(b *Builder) { b.pageParam = name }
}

// WithParams adds params merged over the request's params. A page param
// among them is ignored.
func WithParams(params Params) Option {
	return func(b *Builder) { b.params = params.Clone() }
}

// WithParamsFunc sets a function that replaces the merged params.
func WithParamsFunc(fn ParamsFunc) Option {
	return func(b *Builder) { b.override = fn }
}

// WithFragment sets the fragment, with or without the leading '#', replacing the request's one.
func WithFragment(fragment string) Option {
	return func(b *Builder) { b.fragment = strings.TrimPrefix(fragment, "#") }
}

// New creates a Builder.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{pageParam: DefaultPageParam}
	for _, opt := range opts {
		opt(b)
	}
	if strings.TrimSpace(b.pageParam) == "" {
		return nil, ErrEmptyPageParam
	}
	return b, nil
}

// PageParam returns the page query parameter name.
func (b *Builder) PageParam() string {
	return b.pageParam
}

// URL returns the URL of page. The page param keeps its position when the
// request already has it and is appended otherwise; extra params follow.
func (b *Builder) URL(req Request, page int, absolute bool) string {
	return b.build(req, strconv.Itoa(page), absolute)
}

// Template returns the URL with Placeholder in place of the page number.
func (b *Builder) Template(req Request, absolute bool) string {
	return b.build(req, Placeholder, absolute)
}

// Func returns a URLFunc bound to req.
func (b *Builder) Func(req Request, absolute bool) URLFunc {
	tmpl := b.Template(req, absolute)
	return func(page int) string { return Fill(tmpl, page) }
}

func (b *Builder) build(req Request, page string, absolute bool) string {
	params := req.Params.Set(b.pageParam, page).Merge(b.params.Del(b.pageParam))
	if b.override != nil {
		params = b.override(params)
	}

	var sb strings.Builder
	if absolute && req.Host != "" {
		scheme := req.Scheme
		if scheme == "" {
			scheme = "http"
		}
		sb.WriteString(scheme)
		sb.WriteString("://")
		sb.WriteString(req.Host)
	}
	path := req.Path
	if path == "" {
		path = "/"
	}
	sb.WriteString(path)

	if query := params.Encode(); query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}

	fragment := req.Fragment
	if b.fragment != "" {
		fragment = b.fragment
	}
	if fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(fragment)
	}
	return sb.String()
}

// Fill replaces Placeholder in a template with page.
func Fill(template string, page int) string {
	return strings.ReplaceAll(template, Placeholder, strconv.Itoa(page))
}

// PageFromURL extracts the page number from a URL built by a Builder.
func PageFromURL(raw, pageParam string) (int, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing url: %w", err)
	}
	value, ok := ParseQuery(u.RawQuery).Get(pageParam)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoPageParam, pageParam)
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, value)
	}
	return page, nil
}
