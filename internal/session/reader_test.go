package session

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestReadTranscript_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := NewTranscript(&buf)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.SetClock(func() time.Time { return at })

	writes := []struct {
		typ  RecordType
		data Payload
	}{
		{RecordSessionStart, StartData{ID: "abc", Seed: 9}},
		{RecordUser, TextData{Content: "buy \"2\" milk"}},
		{RecordPurchase, PurchaseData{Item: "milk", Quantity: 2, UnitPrice: 0.9, Total: 1.8}},
		{RecordBot, TextData{Content: "Bot: Thanks!"}},
		{RecordSessionEnd, EndData{CartItems: 1, CartTotal: 1.8}},
	}
	for _, w := range writes {
		if err := tr.WriteRecord(w.typ, w.data); err != nil {
			t.Fatalf("WriteRecord: %v", err)
		}
	}

	recs, err := ReadTranscript(&buf)
	if err != nil {
		t.Fatalf("ReadTranscript: %v", err)
	}
	if len(recs) != len(writes) {
		t.Fatalf("got %d records, want %d", len(recs), len(writes))
	}
	for i, r := range recs {
		if r.Type != writes[i].typ {
			t.Errorf("record %d type = %q, want %q", i, r.Type, writes[i].typ)
		}
		if r.Version != 1 || !r.Time.Equal(at) {
			t.Errorf("record %d header = v%d %v", i, r.Version, r.Time)
		}
	}

	text, err := recs[1].Text()
	if err != nil || text != `buy "2" milk` {
		t.Errorf("Text() = %q, %v", text, err)
	}
	p, err := recs[2].Purchase()
	if err != nil {
		t.Fatalf("Purchase(): %v", err)
	}
	if p != (PurchaseData{Item: "milk", Quantity: 2, UnitPrice: 0.9, Total: 1.8}) {
		t.Errorf("Purchase() = %+v", p)
	}
}

func TestReadTranscript_SkipsBlankAndUnknownFields(t *testing.T) {
	t.Parallel()

	in := "\n" +
		`{"v":1,"type":"user","ts":"2024-03-01T12:00:00Z","extra":[1,{"a":2}],"data":{"content":"hi","mood":"ok"}}` + "\n\n"
	recs, err := ReadTranscript(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTranscript: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if text, _ := recs[0].Text(); text != "hi" {
		t.Errorf("Text() = %q, want hi", text)
	}
}

func TestReadTranscript_Malformed(t *testing.T) {
	t.Parallel()

	in := `{"v":1,"type":"user","ts":"2024-03-01T12:00:00Z"}` + "\n" + `{"v":1,"type":` + "\n"
	_, err := ReadTranscript(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2 failure", err)
	}
}

func TestReadTranscript_BadTimestamp(t *testing.T) {
	t.Parallel()

	in := `{"v":1,"type":"user","ts":"yesterday"}` + "\n"
	if _, err := ReadTranscript(strings.NewReader(in)); err == nil {
		t.Error("expected error for bad timestamp")
	}
}
