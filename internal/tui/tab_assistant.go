package tui

import (
	"strings"

	"github.com/theirongolddev/splitabill/internal/assistant"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type chatState struct {
	typing bool
	input  textinput.Model
}

func newChatInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about saving, budgets, debt, emergency funds or investing"
	ti.CharLimit = 280
	ti.Width = 60
	ti.Prompt = "› "
	return ti
}

func (a App) updateAssistantKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "enter", "/":
		a.chat.input = newChatInput()
		a.chat.input.Focus()
		a.chat.typing = true
		return a, textinput.Blink, true
	}
	return a, nil, false
}

func (a App) updateChatInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if a.bot.Send(a.chat.input.Value()) != nil {
			a.chat.input.Reset()
		}
		return a, nil
	case "esc":
		a.chat.typing = false
		a.chat.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

func (a App) renderAssistantTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	botName := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	userName := lipgloss.NewStyle().Foreground(t.Magenta).Background(t.Surface).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW - 2)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var msgs []string
	for _, m := range a.bot.History() {
		who := botName.Render("BudgetBot")
		if m.Sender == assistant.SenderUser {
			who = userName.Render("You")
		}
		msgs = append(msgs, who+timeStyle.Render("  "+m.Timestamp.Format("15:04"))+"\n"+
			textStyle.Render("  "+m.Content))
	}

	// Show the newest messages that fit above the input line
	budgetLines := h - 6
	if budgetLines < 4 {
		budgetLines = 4
	}
	start := len(msgs)
	used := 0
	for start > 0 {
		n := lipgloss.Height(msgs[start-1]) + 1
		if used+n > budgetLines && start < len(msgs) {
			break
		}
		used += n
		start--
	}

	var b strings.Builder
	b.WriteString(strings.Join(msgs[start:], "\n\n"))
	b.WriteString("\n\n")
	if a.chat.typing {
		b.WriteString(a.chat.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("[Enter] send  [Esc] stop typing"))
	} else {
		b.WriteString(dimStyle.Render("[Enter] ask BudgetBot a question"))
	}

	return components.ContentCard("BudgetBot", b.String(), cw)
}
