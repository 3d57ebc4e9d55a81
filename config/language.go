package config

import (
	"fmt"
	"strings"
)

// Language identifies one of the two supported locales
type Language string

const (
	English  Language = "en"
	Japanese Language = "jp"
)

// Languages lists the supported locales in display order
var Languages = []Language{English, Japanese}

// Valid reports whether l is a supported locale
func (l Language) Valid() bool {
	return l == English || l == Japanese
}

// Toggle returns the other supported locale
func (l Language) Toggle() Language {
	if l == Japanese {
		return English
	}
	return Japanese
}

// ParseLanguage accepts "en"/"jp" plus the common "ja" alias, case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "jp", "ja", "japanese":
		return Japanese, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}
