package transcript

import "time"

// Candidate timestamp layouts covering the known export locales: two or four
// digit years, 12 or 24 hour clocks, upper or lower case meridiems. Hours
// parse with or without a leading zero either way.
var layouts = []string{
	"2/1/06, 3:04 PM",
	"2/1/2006, 3:04 PM",
	"2/1/06, 3:04 pm",
	"2/1/2006, 3:04 pm",
	"2/1/06, 15:04",
	"2/1/2006, 15:04",
}

// sniffLayout infers the timestamp layout of a transcript from its first
// parseable token. The layout is detected once and applied uniformly.
func sniffLayout(tokens []string) string {
	for _, token := range tokens {
		for _, layout := range layouts {
			if _, err := time.Parse(layout, token); err == nil {
				return layout
			}
		}
	}
	return ""
}
