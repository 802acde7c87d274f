// ABOUTME: Line-oriented mode: plain prompts on stdout, answers read from stdin one line at a time
// ABOUTME: Used for pipes and dumb terminals; end of input ends the conversation politely

package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/grocer-go/internal/dialogue"
)

// Conversation is what line mode drives.
type Conversation interface {
	Run(ctx context.Context, term dialogue.IO) error
}

// Terminal implements dialogue.IO over a reader and a writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal wraps in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Say prints line followed by a newline.
func (t *Terminal) Say(_ context.Context, line string) error {
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Ask prints prompt and reads one line without its terminator. A final line
// without a newline is still returned; after that Ask returns io.EOF.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	text, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if text == "" {
			// Keep the goodbye off the prompt line.
			_, _ = io.WriteString(t.out, "\n")
			return "", io.EOF
		}
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// Run drives conv over in and out until it finishes.
func Run(ctx context.Context, conv Conversation, in io.Reader, out io.Writer) error {
	return conv.Run(ctx, NewTerminal(in, out))
}
