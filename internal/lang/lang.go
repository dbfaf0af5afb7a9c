// Package lang maps client language codes onto the two prompt/model profiles.
package lang

import "strings"

const (
	Korean  = "ko"
	English = "en"

	// Default is used when a request omits its language.
	Default = Korean
)

var names = map[string]string{
	"ko": "Korean",
	"en": "English",
	"ja": "Japanese",
	"zh": "Chinese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"ru": "Russian",
	"vi": "Vietnamese",
}

// Normalize lower-cases a code like "ko-KR" to "ko". Empty input stays empty.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

// Profile returns Korean for Korean codes and English for everything else.
func Profile(code string) string {
	if Normalize(code) == Korean {
		return Korean
	}
	return English
}

// Name returns the English name of a language for use inside prompts.
func Name(code string) string {
	c := Normalize(code)
	if n, ok := names[c]; ok {
		return n
	}
	if c == "" {
		return names[Default]
	}
	return c
}
