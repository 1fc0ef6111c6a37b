package preview

import (
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMime reports the payload's sniffed content type
func DetectMime(data []byte) string {
	return mimetype.Detect(data).String()
}

// Extract returns the first n runes of payloads that carry text.
// Anything else yields an empty string, never an error, so callers can
// treat previews as strictly optional.
func Extract(data []byte, n int) string {
	if len(data) == 0 || n <= 0 {
		return ""
	}
	if !isText(data) || !utf8.Valid(data) {
		return ""
	}
	runes := []rune(string(data))
	if len(runes) <= n {
		return string(data)
	}
	return string(runes[:n])
}

func isText(data []byte) bool {
	for mtype := mimetype.Detect(data); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
