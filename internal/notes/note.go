package notes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ImportantMarker prefixes raw input that should be rendered as important.
const ImportantMarker = '!'

// DateKeyLayout is the storage key format for a day's list.
const DateKeyLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date key")

// Note is a single live row in a day's list.
type Note struct {
	ID        string
	Text      string
	Checked   bool
	Important bool // display only, never persisted
}

// Record is the persisted shape of a Note.
type Record struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// Parse strips the whole run of leading importance markers from raw
// input, so parsing its own output changes nothing: "!!x" becomes "x".
func Parse(raw string) (string, bool) {
	display := strings.TrimLeft(raw, string(ImportantMarker))
	return display, len(display) != len(raw)
}

// NewNote builds an unchecked note from raw input text.
func NewNote(raw string) Note {
	text, important := Parse(raw)
	return Note{
		ID:        NewID(),
		Text:      text,
		Important: important,
	}
}

// NewID returns a fresh ULID string.
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// DateKey formats t as a storage key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey validates key and returns the date it names.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return t, nil
}

// ToRecords converts rows to their persisted form, preserving order.
func ToRecords(list []Note) []Record {
	records := make([]Record, len(list))
	for i, n := range list {
		records[i] = Record{ID: n.ID, Text: n.Text, Checked: n.Checked}
	}
	return records
}

// FromRecords converts persisted records to rows. Records written before
// notes carried IDs get a fresh one.
func FromRecords(records []Record) []Note {
	list := make([]Note, len(records))
	for i, r := range records {
		id := r.ID
		if id == "" {
			id = NewID()
		}
		list[i] = Note{ID: id, Text: r.Text, Checked: r.Checked}
	}
	return list
}
