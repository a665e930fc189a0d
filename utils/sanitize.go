package utils

import (
	"regexp"
	"strings"
)

const (
	MaxSanitizedLen = 1000
	MaxEmailLen     = 100
	MaxPhoneLen     = 20
)

var (
	angleBracketPattern = regexp.MustCompile(`[<>]`)
	jsProtocolPattern   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeString strips the substrings that could smuggle markup or script
// into an HTML email body, trims whitespace and caps the length. It runs in
// addition to schema validation: the message field is freeform and still
// needs injection defense even after its format was checked.
func SanitizeString(s string, maxLen int) string {
	s = angleBracketPattern.ReplaceAllString(s, "")
	s = jsProtocolPattern.ReplaceAllString(s, "")
	s = eventHandlerPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if maxLen <= 0 {
		maxLen = MaxSanitizedLen
	}
	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}
