package transcript

import (
	"strings"
	"time"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/textprocessor"
)

const (
	// NotificationSender marks system events (joins, leaves, title changes)
	// that carry no human sender.
	NotificationSender = "group_notification"

	// DefaultMediaPlaceholder is the substring exports substitute for omitted
	// attachments.
	DefaultMediaPlaceholder = "<Media omitted>"
)

// Message is one parsed transcript entry. The date-derived fields are cached
// at parse time and never change; only the sentiment label is attached later.
type Message struct {
	Timestamp time.Time
	Sender    string
	Body      string

	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
	Date    time.Time // midnight of Timestamp's day

	IsMedia    bool
	URLs       []string
	OutOfOrder bool

	Sentiment sentiment.Label
}

func (m *Message) IsNotification() bool {
	return m.Sender == NotificationSender
}

func newMessage(timestamp time.Time, sender string, body string, mediaPlaceholder string) *Message {
	return &Message{
		Timestamp: timestamp,
		Sender:    sender,
		Body:      body,
		Year:      timestamp.Year(),
		Month:     timestamp.Month(),
		Day:       timestamp.Day(),
		Weekday:   timestamp.Weekday(),
		Hour:      timestamp.Hour(),
		Date: time.Date(
			timestamp.Year(), timestamp.Month(), timestamp.Day(),
			0, 0, 0, 0, timestamp.Location(),
		),
		IsMedia: strings.Contains(body, mediaPlaceholder),
		URLs:    textprocessor.ExtractURLs(body),
	}
}
