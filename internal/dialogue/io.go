// ABOUTME: Conversation I/O boundary and the adapters layered over it
// ABOUTME: Bot lines get the "Bot: " prefix; every exchange can be mirrored to a transcript

package dialogue

import (
	"context"
	"strings"

	pilog "github.com/mauromedda/grocer-go/internal/log"
	"github.com/mauromedda/grocer-go/internal/session"
)

const (
	botPrefix  = "Bot: "
	userPrompt = "User: "
)

// IO is a line-oriented terminal. Say prints one line; Ask prints prompt
// without a newline and returns the next line of input, or io.EOF when
// input is closed.
type IO interface {
	Say(ctx context.Context, line string) error
	Ask(ctx context.Context, prompt string) (string, error)
}

// botVoice prefixes every line and prompt with "Bot: ". It is what the
// resolver talks through.
type botVoice struct {
	io IO
}

func (b botVoice) Say(ctx context.Context, text string) error {
	for line := range strings.SplitSeq(text, "\n") {
		if err := b.io.Say(ctx, botPrefix+line); err != nil {
			return err
		}
	}
	return nil
}

func (b botVoice) Ask(ctx context.Context, prompt string) (string, error) {
	return b.io.Ask(ctx, botPrefix+prompt)
}

// recorder mirrors output lines and input replies to a transcript.
type recorder struct {
	io IO
	tr *session.Transcript
}

func (r recorder) Say(ctx context.Context, line string) error {
	r.write(session.RecordBot, line)
	return r.io.Say(ctx, line)
}

func (r recorder) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt != userPrompt {
		r.write(session.RecordBot, prompt)
	}
	answer, err := r.io.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	r.write(session.RecordUser, answer)
	return answer, nil
}

func (r recorder) write(typ session.RecordType, text string) {
	if err := r.tr.WriteRecord(typ, session.TextData{Content: text}); err != nil {
		pilog.Warn("transcript: %v", err)
	}
}
