// ABOUTME: Tests for the conversation bridge: message forwarding, answers and shutdown
// ABOUTME: Uses a fake ProgramSender that records and optionally replies

package btea

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
	// onSend runs after the message is recorded.
	onSend func(tea.Msg)
}

func (f *fakeSender) Send(msg tea.Msg) {
	f.mu.Lock()
	f.msgs = append(f.msgs, msg)
	hook := f.onSend
	f.mu.Unlock()
	if hook != nil {
		hook(msg)
	}
}

func (f *fakeSender) sent() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tea.Msg(nil), f.msgs...)
}

func TestBridge_SayForwardsLine(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	s := &fakeSender{}
	b.Attach(s)

	if err := b.Say(context.Background(), "Bot: hi"); err != nil {
		t.Fatalf("Say: %v", err)
	}
	got := s.sent()
	if len(got) != 1 {
		t.Fatalf("sent %d msgs, want 1", len(got))
	}
	if msg, ok := got[0].(BotLineMsg); !ok || msg.Text != "Bot: hi" {
		t.Errorf("got %#v, want BotLineMsg{Bot: hi}", got[0])
	}
}

func TestBridge_SayCancelled(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	s := &fakeSender{}
	b.Attach(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Say(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(s.sent()) != 0 {
		t.Error("nothing should be sent after cancel")
	}
}

func TestBridge_AskReceivesAnswer(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	s := &fakeSender{}
	s.onSend = func(msg tea.Msg) {
		if _, ok := msg.(PromptMsg); ok {
			b.Answer("yes")
		}
	}
	b.Attach(s)

	got, err := b.Ask(context.Background(), "User: ")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "yes" {
		t.Errorf("answer = %q, want yes", got)
	}
	if msg, ok := s.sent()[0].(PromptMsg); !ok || msg.Prompt != "User: " {
		t.Errorf("first msg = %#v, want PromptMsg{User: }", s.sent()[0])
	}
}

func TestBridge_AnswerDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	if !b.Answer("one") {
		t.Fatal("first Answer should be buffered")
	}
	if b.Answer("two") {
		t.Error("second Answer should be refused while the first is pending")
	}
}

func TestBridge_CloseUnblocksAsk(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	b.Attach(&fakeSender{})

	errCh := make(chan error, 1)
	go func() {
		_, err := b.Ask(context.Background(), "User: ")
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	b.Close()
	b.Close() // idempotent

	select {
	case err := <-errCh:
		if !errors.Is(err, io.EOF) {
			t.Errorf("err = %v, want io.EOF", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after Close")
	}

	if _, err := b.Ask(context.Background(), "User: "); !errors.Is(err, io.EOF) {
		t.Errorf("Ask after Close = %v, want io.EOF", err)
	}
}

func TestBridge_AskContextCancel(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	b.Attach(&fakeSender{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := b.Ask(ctx, "User: "); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
}
