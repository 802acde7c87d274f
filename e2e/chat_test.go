// ABOUTME: E2E tests for the line and full-screen front ends through a real PTY
// ABOUTME: Covers greeting, a cancelled purchase, stop, Ctrl+C and the transcript file

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLine_GreetAndStop(t *testing.T) {
	skipShort(t)

	s := startGrocer(t, "--mode", "line", "--seed", "1")
	defer s.close()

	s.expectStringTimeout(t, "Welcome to the Grocery Chatbot.", 5*time.Second)
	s.expectStringTimeout(t, "User: ", 5*time.Second)

	s.send(t, "hello\n")
	s.expectStringTimeout(t, "Bot: ", 5*time.Second)

	s.send(t, "stop\n")
	s.expectStringTimeout(t, "It was nice talking to you!", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestLine_CancelPurchase(t *testing.T) {
	skipShort(t)

	s := startGrocer(t, "--mode", "line", "--seed", "1")
	defer s.close()

	s.expectStringTimeout(t, "User: ", 5*time.Second)
	s.send(t, "I want to buy something\n")
	s.expectStringTimeout(t, "Okay, let's buy something!", 5*time.Second)
	s.expectStringTimeout(t, "Did you mean", 5*time.Second)

	s.send(t, "cancel\n")
	s.expectStringTimeout(t, "Transaction canceled.", 5*time.Second)

	s.send(t, "stop\n")
	s.waitExit(t, 5*time.Second)
}

func TestLine_EndOfInput(t *testing.T) {
	skipShort(t)

	s := startGrocer(t, "--mode", "line")
	defer s.close()

	s.expectStringTimeout(t, "User: ", 5*time.Second)
	s.sendCtrl(t, 'd')
	s.expectStringTimeout(t, "It was nice talking to you!", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestLine_Transcript(t *testing.T) {
	skipShort(t)

	path := filepath.Join(t.TempDir(), "chat.jsonl")
	s := startGrocer(t, "--mode", "line", "--transcript", path)
	defer s.close()

	s.expectStringTimeout(t, "User: ", 5*time.Second)
	s.send(t, "stop\n")
	s.waitExit(t, 5*time.Second)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	for _, want := range []string{`"type":"session_start"`, `"type":"user"`, `"type":"session_end"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("transcript missing %s:\n%s", want, data)
		}
	}
}

func TestTUI_StopExits(t *testing.T) {
	skipShort(t)

	s := startGrocer(t, "--mode", "tui", "--theme", "notty")
	defer s.close()

	s.expectStringTimeout(t, "Welcome to the Grocery Chatbot.", 5*time.Second)
	s.expectStringTimeout(t, "User: ", 5*time.Second)

	s.send(t, "stop\r")
	s.waitExit(t, 5*time.Second)
}

func TestTUI_CtrlCExits(t *testing.T) {
	skipShort(t)

	s := startGrocer(t, "--mode", "tui")
	defer s.close()

	s.expectStringTimeout(t, "Welcome to the Grocery Chatbot.", 5*time.Second)
	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestCatalog_List(t *testing.T) {
	skipShort(t)

	out, err := exec.Command(binPath, "catalog", "list").Output()
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if !strings.Contains(string(out), "whole milk\t£1.00") {
		t.Errorf("catalog list missing whole milk:\n%s", out)
	}
}
