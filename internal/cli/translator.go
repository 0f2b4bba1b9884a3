package cli

import (
	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/internal/i18n"
)

// loggingTranslator reports missing dictionary keys at debug level.
type loggingTranslator struct {
	next i18n.Translator
	log  zerolog.Logger
}

func (t loggingTranslator) Translate(locale, key string, vars i18n.Vars) string {
	s := t.next.Translate(locale, key, vars)
	if s == i18n.MissingPlaceholder(key) {
		t.log.Debug().Str("locale", locale).Str("key", key).Msg("translation missing")
	}
	return s
}
