// ABOUTME: HTML exporter for grocery chat transcripts using Go html/template
// ABOUTME: Renders user lines, bot lines and purchases with kind-specific color indicators

package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/mauromedda/grocer-go/internal/cart"
	"github.com/mauromedda/grocer-go/internal/session"
)

// Entry kinds double as CSS classes.
const (
	KindUser     = "user"
	KindBot      = "bot"
	KindPurchase = "purchase"
)

// Entry is one rendered line of a conversation.
type Entry struct {
	Kind string
	Text string
	Time time.Time
}

// Document is a transcript reduced to what the page shows.
type Document struct {
	ID      string
	Seed    string
	Total   string
	Entries []Entry
}

// Build reduces transcript records to a Document. Intent records are
// omitted; a transcript holding several sessions keeps the last ID.
func Build(records []session.Record) (*Document, error) {
	doc := &Document{}
	for _, r := range records {
		switch r.Type {
		case session.RecordSessionStart:
			id, seed, err := startFields(r)
			if err != nil {
				return nil, err
			}
			doc.ID, doc.Seed = id, seed
		case session.RecordUser, session.RecordBot:
			text, err := r.Text()
			if err != nil {
				return nil, fmt.Errorf("%s record: %w", r.Type, err)
			}
			kind := KindUser
			if r.Type == session.RecordBot {
				kind = KindBot
				text = strings.TrimPrefix(text, "Bot: ")
			}
			doc.Entries = append(doc.Entries, Entry{Kind: kind, Text: text, Time: r.Time})
		case session.RecordPurchase:
			p, err := r.Purchase()
			if err != nil {
				return nil, fmt.Errorf("purchase record: %w", err)
			}
			doc.Entries = append(doc.Entries, Entry{
				Kind: KindPurchase,
				Text: fmt.Sprintf("%d × %s at %s = %s", p.Quantity, p.Item, cart.FormatPrice(p.UnitPrice), cart.FormatPrice(p.Total)),
				Time: r.Time,
			})
		case session.RecordSessionEnd:
			end, err := r.End()
			if err != nil {
				return nil, fmt.Errorf("session_end record: %w", err)
			}
			doc.Total = cart.FormatPrice(end.CartTotal)
		}
	}
	return doc, nil
}

func startFields(r session.Record) (id, seed string, err error) {
	start, err := r.Start()
	if err != nil {
		return "", "", fmt.Errorf("session_start record: %w", err)
	}
	if start.Seed != 0 {
		seed = fmt.Sprint(start.Seed)
	}
	return start.ID, seed, nil
}

// ExportHTML renders doc as a styled HTML document to w.
func ExportHTML(doc *Document, w io.Writer) error {
	return htmlTmpl.Execute(w, doc)
}

// escapeNewlines converts newlines to <br> for HTML rendering.
func escapeNewlines(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

var funcMap = template.FuncMap{
	"escapeNewlines": escapeNewlines,
}

var htmlTmpl = template.Must(template.New("transcript").Funcs(funcMap).Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Grocery Chat {{ .ID }}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    background: #1e1e2e;
    color: #cdd6f4;
    font-family: 'SF Mono', 'Cascadia Code', 'Fira Code', monospace;
    font-size: 14px;
    line-height: 1.6;
    padding: 24px;
    max-width: 900px;
    margin: 0 auto;
  }
  .message {
    margin-bottom: 16px;
    padding: 12px 16px;
    border-radius: 8px;
    border-left: 4px solid;
  }
  .message.user {
    border-left-color: #89b4fa;
    background: #1e1e2e;
  }
  .message.bot {
    border-left-color: #a6e3a1;
    background: #1e1e2e;
  }
  .message.purchase {
    border-left-color: #9399b2;
    background: #1e1e2e;
  }
  .role-badge {
    display: inline-block;
    font-size: 11px;
    font-weight: 600;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    padding: 2px 8px;
    border-radius: 4px;
    margin-bottom: 8px;
  }
  .user .role-badge { background: #89b4fa22; color: #89b4fa; }
  .bot .role-badge { background: #a6e3a122; color: #a6e3a1; }
  .purchase .role-badge { background: #9399b222; color: #9399b2; }
  .content-block { margin-top: 8px; }
  .purchase-detail {
    background: #313244;
    padding: 8px 12px;
    border-radius: 6px;
    margin-top: 8px;
    color: #cba6f7;
  }
  .meta { color: #9399b2; font-size: 12px; margin-bottom: 16px; }
  time { float: right; color: #6c7086; font-size: 11px; }
</style>
</head>
<body>
<div class="meta">Session {{ .ID }}{{ if .Seed }} · seed {{ .Seed }}{{ end }}{{ if .Total }} · cart total {{ .Total }}{{ end }}</div>
{{- range .Entries }}
<div class="message {{ .Kind }}">
  <span class="role-badge">{{ .Kind }}</span>{{ if not .Time.IsZero }}<time>{{ .Time.Format "15:04:05" }}</time>{{ end }}
  {{- if eq .Kind "purchase" }}
  <div class="purchase-detail">{{ .Text }}</div>
  {{- else }}
  <div class="content-block">{{ escapeNewlines .Text }}</div>
  {{- end }}
</div>
{{- end }}
</body>
</html>
`
