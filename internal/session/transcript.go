// ABOUTME: Append-only JSONL transcript of a conversation, one record per line
// ABOUTME: Records are encoded with easyjson writers; files are opened O_APPEND

package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mailru/easyjson/jwriter"
)

// RecordType identifies the type of transcript record.
type RecordType string

const (
	RecordSessionStart RecordType = "session_start"
	RecordUser         RecordType = "user"
	RecordBot          RecordType = "bot"
	RecordIntent       RecordType = "intent"
	RecordPurchase     RecordType = "purchase"
	RecordSessionEnd   RecordType = "session_end"
)

const recordVersion = 1

// Payload is the data carried by one record.
type Payload interface {
	MarshalEasyJSON(w *jwriter.Writer)
}

// StartData opens a transcript.
type StartData struct {
	ID      string
	DataDir string
	Seed    uint64
}

func (d StartData) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.String(d.ID)
	if d.DataDir != "" {
		w.RawString(`,"data_dir":`)
		w.String(d.DataDir)
	}
	w.RawString(`,"seed":`)
	w.Uint64(d.Seed)
	w.RawByte('}')
}

// TextData carries one user input or one bot line.
type TextData struct {
	Content string
}

func (d TextData) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"content":`)
	w.String(d.Content)
	w.RawByte('}')
}

// IntentData records the classifier decision for an input.
type IntentData struct {
	Label string
	Score float64
}

func (d IntentData) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"label":`)
	w.String(d.Label)
	w.RawString(`,"score":`)
	w.Float64(d.Score)
	w.RawByte('}')
}

// PurchaseData records an item added to the cart.
type PurchaseData struct {
	Item      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

func (d PurchaseData) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"item":`)
	w.String(d.Item)
	w.RawString(`,"quantity":`)
	w.Int(d.Quantity)
	w.RawString(`,"unit_price":`)
	w.Float64(d.UnitPrice)
	w.RawString(`,"total":`)
	w.Float64(d.Total)
	w.RawByte('}')
}

// EndData closes a transcript.
type EndData struct {
	CartItems int
	CartTotal float64
}

func (d EndData) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"cart_items":`)
	w.Int(d.CartItems)
	w.RawString(`,"cart_total":`)
	w.Float64(d.CartTotal)
	w.RawByte('}')
}

// Transcript appends records to an io.Writer. A nil *Transcript discards
// every record, so callers need not check whether recording is enabled.
type Transcript struct {
	mu    sync.Mutex
	out   io.Writer
	close func() error
	now   func() time.Time
}

// NewTranscript writes records to w.
func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{out: w, now: time.Now}
}

// OpenTranscript appends to the file at path, creating it and its parent
// directory when missing.
func OpenTranscript(path string) (*Transcript, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating transcript dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	t := NewTranscript(f)
	t.close = f.Close
	return t, nil
}

// SetClock replaces the timestamp source.
func (t *Transcript) SetClock(now func() time.Time) {
	t.now = now
}

// WriteRecord appends one record.
func (t *Transcript) WriteRecord(recType RecordType, data Payload) error {
	if t == nil {
		return nil
	}

	var w jwriter.Writer
	w.RawString(`{"v":`)
	w.Int(recordVersion)
	w.RawString(`,"type":`)
	w.String(string(recType))
	w.RawString(`,"ts":`)
	w.String(t.now().UTC().Format(time.RFC3339))
	if data != nil {
		w.RawString(`,"data":`)
		data.MarshalEasyJSON(&w)
	}
	w.RawString("}\n")

	line, err := w.BuildBytes()
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.out.Write(line); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close releases the underlying file, if any.
func (t *Transcript) Close() error {
	if t == nil || t.close == nil {
		return nil
	}
	return t.close()
}
