// Package i18n provides read-only translation dictionaries keyed by locale and
// dotted key, with pluggable pluralization and %{name} interpolation.
//
// Dictionaries are YAML documents rooted at the locale name:
//
//	en:
//	  pagenav:
//	    item_name:
//	      one: "item"
//	      other: "items"
//
// A Dictionary is built once with Load and is safe for concurrent use.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is loaded when no locale is requested.
const DefaultLocale = "en"

//go:embed locales/*.yml
var builtin embed.FS

// Common errors.
var (
	ErrUnknownLocale = fmt.Errorf("unknown locale: %w", fs.ErrNotExist)
	ErrLocaleMissing = errors.New("dictionary does not define locale")
	ErrNoLocales     = errors.New("at least one locale is required")
)

// Vars are interpolation values. The "count" entry also selects the plural form.
type Vars map[string]any

// Translator is the lookup service renderers consume.
type Translator interface {
	Translate(locale, key string, vars Vars) string
}

// LocaleSpec describes one locale to load.
type LocaleSpec struct {
	// Locale is the dictionary root key, e.g. "en" or "pt-BR".
	Locale string

	// Path is a YAML dictionary file. Empty selects the built-in dictionary.
	Path string

	// Pluralizer overrides the CLDR rule of the locale.
	Pluralizer Pluralizer
}

type locale struct {
	name       string
	entries    map[string]string
	pluralizer Pluralizer
}

// Dictionary holds loaded locales. The first loaded locale is the fallback.
type Dictionary struct {
	locales map[string]*locale
	order   []string
	matcher language.Matcher
}

// Load reads the given locales. With no specs it loads DefaultLocale.
func Load(specs ...LocaleSpec) (*Dictionary, error) {
	if len(specs) == 0 {
		specs = []LocaleSpec{{Locale: DefaultLocale}}
	}

	d := &Dictionary{locales: make(map[string]*locale, len(specs))}
	tags := make([]language.Tag, 0, len(specs))
	for _, spec := range specs {
		loc, err := loadLocale(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := d.locales[loc.name]; !dup {
			d.order = append(d.order, loc.name)
			tags = append(tags, language.Make(loc.name))
		}
		d.locales[loc.name] = loc
	}
	if len(d.order) == 0 {
		return nil, ErrNoLocales
	}
	d.matcher = language.NewMatcher(tags)
	return d, nil
}

func loadLocale(spec LocaleSpec) (*locale, error) {
	if spec.Locale == "" {
		return nil, fmt.Errorf("%w: empty locale name", ErrUnknownLocale)
	}

	var (
		data []byte
		err  error
	)
	if spec.Path != "" {
		data, err = os.ReadFile(spec.Path)
	} else {
		data, err = builtin.ReadFile("locales/" + spec.Locale + ".yml")
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %q", ErrUnknownLocale, spec.Locale)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading locale %q: %w", spec.Locale, err)
	}

	var doc map[string]any
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", spec.Locale, err)
	}
	root, ok := doc[spec.Locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleMissing, spec.Locale)
	}

	entries := make(map[string]string)
	flatten("", root, entries)

	pluralizer := spec.Pluralizer
	if pluralizer == nil {
		pluralizer = defaultPluralizer(spec.Locale)
	}
	return &locale{name: spec.Locale, entries: entries, pluralizer: pluralizer}, nil
}

// defaultPluralizer is the CLDR rule of name, or OneOther when name is not a
// known language.
func defaultPluralizer(name string) Pluralizer {
	tag, err := language.Parse(name)
	if err != nil {
		return OneOther
	}
	return CLDR(tag)
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Locales returns the loaded locale names in load order.
func (d *Dictionary) Locales() []string {
	return append([]string(nil), d.order...)
}

// Resolve returns the loaded locale that serves name: an exact match, the
// closest language match, or the first loaded locale.
func (d *Dictionary) Resolve(name string) string {
	if _, ok := d.locales[name]; ok {
		return name
	}
	if tag, err := language.Parse(name); err == nil {
		if _, index, confidence := d.matcher.Match(tag); confidence > language.No {
			return d.order[index]
		}
	}
	return d.order[0]
}

// Translate looks up key in locale and interpolates vars. Plural entries are
// selected with the locale's Pluralizer from vars["count"]. A missing key
// yields a bracketed placeholder.
func (d *Dictionary) Translate(name, key string, vars Vars) string {
	loc := d.locales[d.Resolve(name)]

	value, ok := loc.lookup(key, vars)
	if !ok {
		return MissingPlaceholder(key)
	}
	return Interpolate(value, vars)
}

func (l *locale) lookup(key string, vars Vars) (string, bool) {
	if v, ok := l.entries[key]; ok {
		return v, true
	}
	category := CategoryOther
	if count, ok := countOf(vars); ok {
		category = l.pluralizer.Plural(count)
	}
	if v, ok := l.entries[key+"."+category]; ok {
		return v, true
	}
	v, ok := l.entries[key+"."+CategoryOther]
	return v, ok
}

func countOf(vars Vars) (int, bool) {
	switch c := vars["count"].(type) {
	case int:
		return c, true
	case int64:
		return int(c), true
	case string:
		n, err := strconv.Atoi(c)
		return n, err == nil
	default:
		return 0, false
	}
}

// MissingPlaceholder is the text shown for a missing translation.
func MissingPlaceholder(key string) string {
	return fmt.Sprintf("[translation missing: %q]", key)
}

var interpolation = regexp.MustCompile(`%\{(\w+)\}`)

// Interpolate replaces %{name} with vars[name]. Unknown names are left as is.
func Interpolate(s string, vars Vars) string {
	if len(vars) == 0 {
		return s
	}
	return interpolation.ReplaceAllStringFunc(s, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := vars[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}
