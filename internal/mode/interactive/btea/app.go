// ABOUTME: Root AppModel for the chat UI: transcript, input line, help panel and key dispatch
// ABOUTME: Answers typed here unblock the conversation goroutine through the Bridge

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/grocer-go/internal/config"
)

const (
	defaultWidth = 80
	botPrefix    = "Bot: "
)

const helpMarkdown = `# Grocery Chatbot

Type what you want in plain English, for example:

- **hello** or **how are you?**
- **what do you have in stock?**
- **I want to buy 2 whole milk**
- **show my cart**, **edit my cart**, **checkout**
- **call me by my name** / **forget my name**
- **what is a banana?**

Answer *yes*, *no* or *cancel* when asked to confirm an item.
Type **stop** to end the conversation.
`

type entryKind int

const (
	entryBanner entryKind = iota
	entryBot
	entryPlain
	entryAnswer
)

type entry struct {
	kind   entryKind
	prompt string
	text   string
}

// AppModel is the root Bubble Tea model for the chat UI.
type AppModel struct {
	bridge   *Bridge
	keys     *config.Keybindings
	markdown *MarkdownRenderer
	styles   ChatStyles

	entries []entry
	input   string
	prompt  string
	waiting bool // a prompt is pending and input is accepted
	started bool // the first prompt has been shown

	scroll        int // lines scrolled back from the bottom
	showHelp      bool
	width, height int

	done bool
	err  error
}

// NewAppModel creates an AppModel wired to bridge.
func NewAppModel(bridge *Bridge, keys *config.Keybindings, theme string) AppModel {
	if keys == nil {
		keys = config.NewKeybindings()
	}
	return AppModel{
		bridge:   bridge,
		keys:     keys,
		markdown: NewMarkdownRenderer(theme),
		styles:   DefaultStyles(),
	}
}

// Init returns nil; the conversation goroutine drives the first render.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case BotLineMsg:
		m.entries = append(m.entries, m.classify(msg.Text))
		m.scroll = 0
		return m, nil

	case PromptMsg:
		m.started = true
		m.prompt = msg.Prompt
		m.waiting = true
		return m, nil

	case ConversationDoneMsg:
		m.done = true
		m.waiting = false
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) classify(line string) entry {
	switch {
	case strings.HasPrefix(line, botPrefix):
		return entry{kind: entryBot, text: line}
	case !m.started:
		return entry{kind: entryBanner, text: line}
	default:
		return entry{kind: entryPlain, text: line}
	}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action, ok := m.keys.Action(msg.String()); ok {
		switch action {
		case config.ActionQuit:
			if m.done {
				return m, tea.Quit
			}
			// The conversation sees end of input and says goodbye.
			m.waiting = false
			m.bridge.Close()
			return m, nil
		case config.ActionSend:
			return m.submit(), nil
		case config.ActionScrollUp:
			m.scroll += max(1, m.bodyHeight()/2)
			return m, nil
		case config.ActionScrollDown:
			m.scroll = max(0, m.scroll-max(1, m.bodyHeight()/2))
			return m, nil
		case config.ActionToggleHelp:
			m.showHelp = !m.showHelp
			return m, nil
		case config.ActionClearInput:
			m.input = ""
			return m, nil
		}
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyBackspace:
		m.input = dropLastGrapheme(m.input)
	}
	return m, nil
}

func (m AppModel) submit() AppModel {
	if !m.waiting {
		return m
	}
	if !m.bridge.Answer(m.input) {
		return m
	}
	m.entries = append(m.entries, entry{kind: entryAnswer, prompt: m.prompt, text: m.input})
	m.input = ""
	m.prompt = ""
	m.waiting = false
	m.scroll = 0
	return m
}

// View renders the transcript window, a separator, the input line and a key hint.
func (m AppModel) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	inputLines := m.renderInput(width)
	footer := m.styles.Footer.Render(m.footerText())
	sep := m.styles.Border.Render(strings.Repeat("─", width))

	var body []string
	if m.showHelp {
		body = strings.Split(m.markdown.Render(helpMarkdown, width), "\n")
	} else {
		body = m.renderEntries(width)
	}

	if m.height > 0 {
		avail := max(1, m.height-len(inputLines)-2)
		end := len(body) - min(m.scroll, max(0, len(body)-avail))
		start := max(0, end-avail)
		body = body[start:end]
	}

	parts := append(body, sep)
	parts = append(parts, inputLines...)
	parts = append(parts, footer)
	return strings.Join(parts, "\n")
}

func (m AppModel) bodyHeight() int {
	return max(1, m.height-3)
}

func (m AppModel) renderEntries(width int) []string {
	wrap := lipgloss.NewStyle().Width(width)
	var lines []string
	for _, e := range m.entries {
		var styled string
		switch e.kind {
		case entryBanner:
			styled = m.styles.Banner.Render(e.text)
		case entryBot:
			styled = m.styles.Bot.Render(e.text)
		case entryPlain:
			styled = m.styles.Plain.Render(e.text)
		case entryAnswer:
			styled = m.promptStyle(e.prompt).Render(e.prompt) + m.styles.User.Render(e.text)
		}
		lines = append(lines, strings.Split(wrap.Render(styled), "\n")...)
	}
	return lines
}

func (m AppModel) promptStyle(prompt string) lipgloss.Style {
	if strings.HasPrefix(prompt, botPrefix) {
		return m.styles.Bot
	}
	return m.styles.Prompt
}

func (m AppModel) renderInput(width int) []string {
	if m.done {
		if m.err != nil {
			return []string{m.styles.Error.Render(fmt.Sprintf("error: %v", m.err))}
		}
		return []string{""}
	}
	if !m.waiting {
		return []string{m.styles.Footer.Render("…")}
	}

	cursor := m.styles.Cursor.Render(" ")
	prompt := m.promptStyle(m.prompt).Render(m.prompt)
	if cellWidth(m.prompt)+cellWidth(m.input)+1 <= width {
		return []string{prompt + m.styles.User.Render(m.input) + cursor}
	}

	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(prompt), "\n")
	return append(lines, m.styles.User.Render(tailToWidth(m.input, width-1))+cursor)
}

func (m AppModel) footerText() string {
	hint := func(action config.KeyAction, label string) string {
		keys := m.keys.Keys(action)
		if len(keys) == 0 {
			return ""
		}
		return keys[0] + " " + label
	}
	var parts []string
	for _, h := range []string{
		hint(config.ActionSend, "send"),
		hint(config.ActionToggleHelp, "help"),
		hint(config.ActionScrollUp, "scroll"),
		hint(config.ActionQuit, "quit"),
	} {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, " · ")
}
