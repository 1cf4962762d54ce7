package i18n

import (
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Normalize parses a BCP 47 locale such as "fr_CA" or "EN-us" and returns
// its canonical form.
func Normalize(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.Wrapf(err, "parse locale %q", locale)
	}
	return tag.String(), nil
}

// Match returns the entry of supported that best serves requested, so that
// "fr-CA" picks "fr". ok is false when no supported locale is a reasonable
// match.
func Match(requested string, supported []string) (string, bool) {
	if len(supported) == 0 {
		return "", false
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return "", false
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			// keep indexes aligned with supported
			t = language.Und
		}
		tags = append(tags, t)
	}
	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supported[index], true
}
