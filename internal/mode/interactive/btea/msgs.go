// ABOUTME: Messages exchanged between the conversation goroutine and the Bubble Tea program
// ABOUTME: The conversation only ever talks to the UI through program.Send

package btea

// BotLineMsg carries one line the conversation printed.
type BotLineMsg struct {
	Text string
}

// PromptMsg asks the user for one line of input.
type PromptMsg struct {
	Prompt string
}

// ConversationDoneMsg reports that the conversation goroutine returned.
type ConversationDoneMsg struct {
	Err error
}
