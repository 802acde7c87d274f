// ABOUTME: Conversation-to-Bubble Tea bridge implementing the dialogue IO interface
// ABOUTME: Output becomes tea.Msg via ProgramSender; answers come back over a channel from Update

package btea

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramSender is the interface for sending messages to Bubble Tea.
// Matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Bridge lets a blocking conversation run on its own goroutine while the
// UI owns the terminal.
type Bridge struct {
	program   ProgramSender
	answers   chan string
	closed    chan struct{}
	closeOnce sync.Once
}

// NewBridge creates a bridge with no program attached.
func NewBridge() *Bridge {
	return &Bridge{
		answers: make(chan string, 1),
		closed:  make(chan struct{}),
	}
}

// Attach sets the program that receives output. Call it before the
// conversation goroutine starts.
func (b *Bridge) Attach(p ProgramSender) {
	b.program = p
}

// Say forwards one line to the UI.
func (b *Bridge) Say(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.program.Send(BotLineMsg{Text: line})
	return nil
}

// Ask shows prompt in the input line and waits for the user's answer.
// After Close it returns io.EOF.
func (b *Bridge) Ask(ctx context.Context, prompt string) (string, error) {
	select {
	case <-b.closed:
		return "", io.EOF
	default:
	}

	b.program.Send(PromptMsg{Prompt: prompt})
	select {
	case answer := <-b.answers:
		return answer, nil
	case <-b.closed:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Answer delivers a typed line to the waiting Ask. It never blocks; it
// reports false when an earlier answer has not been consumed yet.
func (b *Bridge) Answer(text string) bool {
	select {
	case b.answers <- text:
		return true
	default:
		return false
	}
}

// Close ends input. Pending and future Asks return io.EOF.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.closed) })
}
