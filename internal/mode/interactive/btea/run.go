// ABOUTME: Entry point for the Bubble Tea chat UI
// ABOUTME: Runs the conversation on its own goroutine and blocks until both have finished

package btea

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/grocer-go/internal/config"
	"github.com/mauromedda/grocer-go/internal/dialogue"
)

// Conversation is what the UI drives.
type Conversation interface {
	Run(ctx context.Context, term dialogue.IO) error
}

// Options configures the chat UI.
type Options struct {
	Keys  *config.Keybindings
	Theme string // glamour style for the help panel
}

// Run starts the Bubble Tea app and the conversation. Blocks until the
// conversation ends or the program is stopped.
func Run(ctx context.Context, conv Conversation, opts Options) error {
	bridge := NewBridge()
	m := NewAppModel(bridge, opts.Keys, opts.Theme)

	p := tea.NewProgram(
		m,
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	bridge.Attach(p)

	convErr := make(chan error, 1)
	go func() {
		err := conv.Run(ctx, bridge)
		p.Send(ConversationDoneMsg{Err: err})
		convErr <- err
	}()

	_, err := p.Run()
	bridge.Close()
	cerr := <-convErr
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return cerr
}
