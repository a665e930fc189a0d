package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStringStripsMarkup(t *testing.T) {
	out := SanitizeString("<script>alert(1)</script>", 0)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
}

func TestSanitizeStringStripsJavascriptProtocol(t *testing.T) {
	out := SanitizeString("click javascript:doEvil() now", 0)
	assert.NotContains(t, strings.ToLower(out), "javascript:")
}

func TestSanitizeStringStripsEventHandlers(t *testing.T) {
	out := SanitizeString(`img onerror=steal() src`, 0)
	assert.NotContains(t, out, "onerror=")
}

func TestSanitizeStringTrimsAndCaps(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  ", 0))
	assert.Equal(t, "abcde", SanitizeString("abcdefgh", 5))
}

func TestSanitizeStringDefaultCap(t *testing.T) {
	long := strings.Repeat("x", 2000)
	assert.Len(t, SanitizeString(long, 0), MaxSanitizedLen)
}
