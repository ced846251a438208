package transcript

import (
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var entryRegex = regexp.MustCompile(
	`\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2}(?:\s?[AaPp][Mm])? - `)

// Parse converts a raw export blob into the ordered message table using the
// default media placeholder.
func Parse(raw string) []*Message {
	return ParseWithPlaceholder(raw, DefaultMediaPlaceholder)
}

// ParseWithPlaceholder scans the transcript for timestamp tokens and pairs
// each token with the text segment that follows it. The preamble before the
// first token is discarded. Lines whose timestamp cannot be reconciled with
// the sniffed layout are skipped; a transcript without any token yields an
// empty table.
func ParseWithPlaceholder(raw string, mediaPlaceholder string) []*Message {
	locs := entryRegex.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		log.Warn("No timestamp entries found in transcript")
		return nil
	}
	tokens := make([]string, len(locs))
	for i, loc := range locs {
		tokens[i] = strings.TrimSuffix(raw[loc[0]:loc[1]], " - ")
	}
	layout := sniffLayout(tokens)
	if layout == "" {
		log.Warnf("No candidate layout matches %v timestamp entries", len(locs))
		return nil
	}

	messages := make([]*Message, 0, len(locs))
	skipped := 0
	var last time.Time
	for i, loc := range locs {
		timestamp, err := time.Parse(layout, tokens[i])
		if err != nil {
			skipped++
			continue
		}
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sender, body := splitSender(raw[loc[1]:end])
		message := newMessage(timestamp, sender, body, mediaPlaceholder)
		if timestamp.Before(last) {
			message.OutOfOrder = true
		} else {
			last = timestamp
		}
		messages = append(messages, message)
	}
	if skipped > 0 {
		log.Warnf("Skipped %v transcript entries with malformed timestamps", skipped)
	}
	log.Infof("Parsed %v messages using layout %q", len(messages), layout)
	return messages
}

// splitSender separates the sender prefix from the message body. A segment
// without the ": " separator is a system event.
func splitSender(segment string) (string, string) {
	if sender, body, ok := strings.Cut(segment, ": "); ok {
		return sender, strings.TrimSpace(body)
	}
	return NotificationSender, strings.TrimSpace(segment)
}
