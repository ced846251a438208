package textprocessor

import (
	"regexp"
	"strings"
)

var urlRegex = regexp.MustCompile(`(?i)(https?://[^\s]+|www\.[^\s]+)`)

// Tokenize splits a message body on whitespace.
func Tokenize(body string) []string {
	return strings.Fields(body)
}

// ExtractURLs returns all URL substrings of a message body in order of appearance.
func ExtractURLs(body string) []string {
	return urlRegex.FindAllString(body, -1)
}

func IsURL(token string) bool {
	match := urlRegex.FindString(token)
	return match == token
}
