package transcript

import (
	"reflect"
	"testing"
	"time"
)

const sampleChat = "12/1/24, 10:00 AM - Alice: Hello there\n" +
	"12/1/24, 10:05 AM - Bob: <Media omitted>\n" +
	"12/1/24, 10:06 AM - Alice: https://example.com check this\n"

func TestParseSampleChat(t *testing.T) {
	messages := Parse(sampleChat)
	if len(messages) != 3 {
		t.Fatalf("Parse() returned %v messages, want 3", len(messages))
	}

	first := messages[0]
	wantTime := time.Date(2024, time.January, 12, 10, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(wantTime) {
		t.Errorf("first.Timestamp = %v, want %v", first.Timestamp, wantTime)
	}
	if first.Sender != "Alice" || first.Body != "Hello there" {
		t.Errorf("first = %v: %q, want Alice: \"Hello there\"", first.Sender, first.Body)
	}
	if first.Year != 2024 || first.Month != time.January || first.Day != 12 {
		t.Errorf("derived date fields = %v/%v/%v", first.Day, first.Month, first.Year)
	}
	if first.Weekday != time.Friday || first.Hour != 10 {
		t.Errorf("derived time fields = %v %vh", first.Weekday, first.Hour)
	}

	if !messages[1].IsMedia {
		t.Errorf("second message not flagged as media")
	}
	if messages[0].IsMedia || messages[2].IsMedia {
		t.Errorf("non-media messages flagged as media")
	}
	if want := []string{"https://example.com"}; !reflect.DeepEqual(messages[2].URLs, want) {
		t.Errorf("third.URLs = %v, want %v", messages[2].URLs, want)
	}
	for i, message := range messages {
		if message.IsNotification() {
			t.Errorf("message %v wrongly marked as notification", i)
		}
		if message.OutOfOrder {
			t.Errorf("message %v wrongly flagged out of order", i)
		}
	}
}

func TestParseSystemEvent(t *testing.T) {
	messages := Parse("12/1/24, 10:00 AM - Alice added Bob\n")
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %v messages, want 1", len(messages))
	}
	if !messages[0].IsNotification() {
		t.Errorf("sender = %q, want %q", messages[0].Sender, NotificationSender)
	}
	if messages[0].Body != "Alice added Bob" {
		t.Errorf("body = %q", messages[0].Body)
	}
}

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			"twelve_hour",
			"3/2/21, 9:15 PM - Alice: hi\n",
			time.Date(2021, time.February, 3, 21, 15, 0, 0, time.UTC),
		},
		{
			"twelve_hour_lowercase",
			"3/2/21, 9:15 pm - Alice: hi\n",
			time.Date(2021, time.February, 3, 21, 15, 0, 0, time.UTC),
		},
		{
			"twelve_hour_leading_zero",
			"3/2/21, 09:15 PM - Alice: hi\n",
			time.Date(2021, time.February, 3, 21, 15, 0, 0, time.UTC),
		},
		{
			"twenty_four_hour",
			"3/2/21, 21:15 - Alice: hi\n",
			time.Date(2021, time.February, 3, 21, 15, 0, 0, time.UTC),
		},
		{
			"four_digit_year",
			"3/2/2021, 21:15 - Alice: hi\n",
			time.Date(2021, time.February, 3, 21, 15, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := Parse(tt.raw)
			if len(messages) != 1 {
				t.Fatalf("Parse() returned %v messages, want 1", len(messages))
			}
			if !messages[0].Timestamp.Equal(tt.want) {
				t.Errorf("Timestamp = %v, want %v", messages[0].Timestamp, tt.want)
			}
		})
	}
}

func TestParsePreambleDiscarded(t *testing.T) {
	raw := "Messages and calls are end-to-end encrypted.\n" + sampleChat
	if messages := Parse(raw); len(messages) != 3 {
		t.Errorf("Parse() returned %v messages, want 3", len(messages))
	}
}

func TestParseNoTimestamps(t *testing.T) {
	if messages := Parse("just some text\nwith no structure\n"); len(messages) != 0 {
		t.Errorf("Parse() returned %v messages, want 0", len(messages))
	}
	if messages := Parse(""); len(messages) != 0 {
		t.Errorf("Parse(\"\") returned %v messages, want 0", len(messages))
	}
}

func TestParseSkipsMalformedTimestamp(t *testing.T) {
	raw := "12/1/24, 10:00 AM - Alice: first\n" +
		"31/31/24, 10:01 AM - Bob: bad month\n" +
		"12/1/24, 10:02 AM - Alice: last\n"
	messages := Parse(raw)
	if len(messages) != 2 {
		t.Fatalf("Parse() returned %v messages, want 2", len(messages))
	}
	if messages[0].Body != "first" || messages[1].Body != "last" {
		t.Errorf("surrounding messages corrupted: %q, %q", messages[0].Body, messages[1].Body)
	}
}

func TestParseMultilineBody(t *testing.T) {
	raw := "12/1/24, 10:00 AM - Alice: first line\nsecond line\n" +
		"12/1/24, 10:01 AM - Bob: ok\n"
	messages := Parse(raw)
	if len(messages) != 2 {
		t.Fatalf("Parse() returned %v messages, want 2", len(messages))
	}
	if want := "first line\nsecond line"; messages[0].Body != want {
		t.Errorf("body = %q, want %q", messages[0].Body, want)
	}
}

func TestParseOutOfOrderFlagged(t *testing.T) {
	raw := "12/1/24, 10:05 AM - Alice: later\n" +
		"12/1/24, 10:00 AM - Bob: earlier\n" +
		"12/1/24, 10:06 AM - Alice: latest\n"
	messages := Parse(raw)
	if len(messages) != 3 {
		t.Fatalf("Parse() returned %v messages, want 3", len(messages))
	}
	if messages[0].OutOfOrder || messages[2].OutOfOrder {
		t.Errorf("in-order messages flagged")
	}
	if !messages[1].OutOfOrder {
		t.Errorf("regressing message not flagged out of order")
	}
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(sampleChat)
	b := Parse(sampleChat)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("re-parsing the same transcript produced a different table")
	}
}

func TestParseCustomPlaceholder(t *testing.T) {
	raw := "12/1/24, 10:00 AM - Bob: <attachment hidden>\n"
	messages := ParseWithPlaceholder(raw, "<attachment hidden>")
	if len(messages) != 1 || !messages[0].IsMedia {
		t.Errorf("custom media placeholder not detected")
	}
}
