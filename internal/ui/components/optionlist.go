package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/ui/theme"
)

// OptionList is a single-select list over a question's answer options.
type OptionList struct {
	Options   []quiz.AnswerOption
	Selected  int
	Submitted bool
}

// NewOptionList creates an option list. When a previously chosen value
// is supplied (back navigation), it starts highlighted.
func NewOptionList(options []quiz.AnswerOption, chosen quiz.AnswerValue) OptionList {
	selected := 0
	for i, opt := range options {
		if opt.Value == chosen {
			selected = i
			break
		}
	}
	return OptionList{Options: options, Selected: selected}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
	}

	return o, nil
}

// Value returns the currently highlighted option's value.
func (o OptionList) Value() quiz.AnswerValue {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected].Value
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, opt.Emoji, opt.Label)
		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
