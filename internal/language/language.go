// Package language validates and normalizes user-supplied language codes.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize parses a language code or name ("es", "spa", "es-MX") and
// returns its ISO 639-1 base code. Both the recognizer and the synthesis
// engine take two-letter codes.
func Normalize(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("language code is empty")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("unrecognized language %q: %w", code, err)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("unrecognized language %q", code)
	}
	return base.String(), nil
}

// Display returns the English name for a normalized code, falling back to
// the code itself when it cannot be resolved.
func Display(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
