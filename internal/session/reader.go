// ABOUTME: Reads JSONL transcripts back into records using easyjson lexers
// ABOUTME: Blank lines are skipped; a malformed line fails with its line number

package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mailru/easyjson/jlexer"
)

// maxRecordSize bounds one transcript line.
const maxRecordSize = 1 << 20

// Record is one decoded transcript line. Data holds the raw payload.
type Record struct {
	Version int
	Type    RecordType
	Time    time.Time
	Data    []byte
}

func (r *Record) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "v":
			r.Version = in.Int()
		case "type":
			r.Type = RecordType(in.String())
		case "ts":
			ts, err := time.Parse(time.RFC3339, in.String())
			if err != nil {
				in.AddError(err)
			}
			r.Time = ts
		case "data":
			r.Data = bytes.Clone(in.Raw())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d *StartData) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			d.ID = in.String()
		case "data_dir":
			d.DataDir = in.String()
		case "seed":
			d.Seed = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d *EndData) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "cart_items":
			d.CartItems = in.Int()
		case "cart_total":
			d.CartTotal = in.Float64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d *TextData) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "content":
			d.Content = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (d *PurchaseData) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "item":
			d.Item = in.String()
		case "quantity":
			d.Quantity = in.Int()
		case "unit_price":
			d.UnitPrice = in.Float64()
		case "total":
			d.Total = in.Float64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// Start decodes the payload of a session_start record.
func (r Record) Start() (StartData, error) {
	var d StartData
	err := decode(r.Data, &d)
	return d, err
}

// End decodes the payload of a session_end record.
func (r Record) End() (EndData, error) {
	var d EndData
	err := decode(r.Data, &d)
	return d, err
}

// Text decodes the payload of a user or bot record.
func (r Record) Text() (string, error) {
	var d TextData
	if err := decode(r.Data, &d); err != nil {
		return "", err
	}
	return d.Content, nil
}

// Purchase decodes the payload of a purchase record.
func (r Record) Purchase() (PurchaseData, error) {
	var d PurchaseData
	err := decode(r.Data, &d)
	return d, err
}

func decode(data []byte, v interface{ UnmarshalEasyJSON(*jlexer.Lexer) }) error {
	in := jlexer.Lexer{Data: data}
	v.UnmarshalEasyJSON(&in)
	in.Consumed()
	return in.Error()
}

// ReadTranscript decodes every record in r.
func ReadTranscript(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	var out []Record
	for n := 1; sc.Scan(); n++ {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := decode(line, &rec); err != nil {
			return nil, fmt.Errorf("transcript line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return out, nil
}

// ReadTranscriptFile decodes the transcript at path.
func ReadTranscriptFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()
	return ReadTranscript(f)
}
