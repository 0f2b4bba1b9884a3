package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural categories as used for dictionary keys.
const (
	CategoryZero  = "zero"
	CategoryOne   = "one"
	CategoryTwo   = "two"
	CategoryFew   = "few"
	CategoryMany  = "many"
	CategoryOther = "other"
)

// Pluralizer maps a count to a plural category key.
type Pluralizer interface {
	Plural(count int) string
}

// PluralFunc adapts a function to Pluralizer.
type PluralFunc func(count int) string

// Plural implements Pluralizer.
func (f PluralFunc) Plural(count int) string {
	return f(count)
}

// OneOther is the English-style rule: 1 is "one", anything else "other".
//
//nolint:gochecknoglobals // Stateless strategy value.
var OneOther = PluralFunc(func(count int) string {
	if count == 1 {
		return CategoryOne
	}
	return CategoryOther
})

// CLDR returns the CLDR cardinal rule for tag.
func CLDR(tag language.Tag) Pluralizer {
	return PluralFunc(func(count int) string {
		if count < 0 {
			count = -count
		}
		return formName(plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0))
	})
}

func formName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return CategoryZero
	case plural.One:
		return CategoryOne
	case plural.Two:
		return CategoryTwo
	case plural.Few:
		return CategoryFew
	case plural.Many:
		return CategoryMany
	default:
		return CategoryOther
	}
}
