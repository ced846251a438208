package analytics

import (
	"sort"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

type EmojiCount struct {
	Emoji string
	Count int
}

// EmojiCounts tallies emoji occurrences in scope, most frequent first, ties
// broken by first occurrence. Multi-codepoint emoji count as one grapheme;
// repeats within a message all count.
func (e *Engine) EmojiCounts(scope Scope) []EmojiCount {
	counts := make(map[string]int)
	order := []string{}
	for _, message := range e.scoped(scope) {
		graphemes := uniseg.NewGraphemes(message.Body)
		for graphemes.Next() {
			cluster := graphemes.Str()
			if !gomoji.ContainsEmoji(cluster) {
				continue
			}
			if _, ok := counts[cluster]; !ok {
				order = append(order, cluster)
			}
			counts[cluster]++
		}
	}
	ranked := make([]EmojiCount, len(order))
	for i, emoji := range order {
		ranked[i] = EmojiCount{Emoji: emoji, Count: counts[emoji]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
