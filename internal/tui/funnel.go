// Package tui runs the funnel interactively in the terminal. It drives
// the same flow controller as the HTTP API and exists for demos and
// for exercising the funnel end to end without a browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/ui/components"
)

type phase int

const (
	phaseContact phase = iota
	phaseCompany
	phaseQuestions
	phaseSubmitting
	phaseLoading
	phaseResult
)

// Funnel is the root Bubble Tea model for one interactive session.
type Funnel struct {
	ctrl    *flow.Controller
	results *result.Service

	width  int
	height int

	phase   phase
	inputs  []components.TextInput
	labels  []string
	focus   int
	options components.OptionList
	errMsg  string
	view    *result.View
}

// New creates the funnel model positioned at the contact step.
func New(ctrl *flow.Controller, results *result.Service) *Funnel {
	f := &Funnel{ctrl: ctrl, results: results}
	f.enterContact()
	return f
}

func (f *Funnel) Init() tea.Cmd {
	if len(f.inputs) > 0 {
		return f.inputs[0].Init()
	}
	return nil
}

func (f *Funnel) enterContact() {
	f.phase = phaseContact
	f.labels = []string{"Nome", "E-mail", "WhatsApp"}
	data := f.ctrl.Data()
	f.inputs = []components.TextInput{
		components.NewTextInput("Seu nome", false, 60),
		components.NewTextInput("voce@empresa.com.br", false, 80),
		components.NewTextInput("(11) 99999-0000", false, 20),
	}
	f.inputs[0].Model.SetValue(data.Contact.Name)
	f.inputs[1].Model.SetValue(data.Contact.Email)
	f.inputs[2].Model.SetValue(data.Contact.Phone)
	f.focus = 0
	f.focusInput(0)
}

func (f *Funnel) enterCompany() {
	f.phase = phaseCompany
	f.labels = []string{"Empresa", "Segmento", "Porte (funcionários)"}
	data := f.ctrl.Data()
	f.inputs = []components.TextInput{
		components.NewTextInput("Nome da empresa", false, 80),
		components.NewTextInput("Ex.: pet shop, restaurante", false, 60),
		components.NewTextInput("Ex.: 1-5, 6-20, 21-50", false, 20),
	}
	f.inputs[0].Model.SetValue(data.Company.Name)
	f.inputs[1].Model.SetValue(data.Company.Segment)
	f.inputs[2].Model.SetValue(data.Company.Size)
	f.focus = 0
	f.focusInput(0)
}

func (f *Funnel) enterQuestion() {
	f.phase = phaseQuestions
	q, ok := f.ctrl.CurrentQuestion()
	if !ok {
		return
	}
	chosen, _ := f.ctrl.SelectedAnswer()
	f.options = components.NewOptionList(q.Answers, chosen)
}

func (f *Funnel) focusInput(i int) {
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Model.Focus()
		} else {
			f.inputs[j].Model.Blur()
		}
	}
}

func (f *Funnel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return f, nil

	case answeredMsg:
		return f.handleAnswered(msg)

	case resultReadyMsg:
		f.view = msg.View
		f.phase = phaseResult
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	return f.forward(msg)
}

func (f *Funnel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return f, tea.Quit
	}

	switch f.phase {
	case phaseContact, phaseCompany:
		return f.handleFormKey(msg)
	case phaseQuestions:
		return f.handleQuestionKey(msg)
	case phaseResult:
		switch msg.String() {
		case "q", "esc", "enter":
			return f, tea.Quit
		}
	}
	return f, nil
}

func (f *Funnel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if f.phase == phaseCompany {
			f.ctrl.Back()
			f.enterContact()
		}
		return f, nil

	case "tab", "down":
		f.focus = (f.focus + 1) % len(f.inputs)
		f.focusInput(f.focus)
		return f, nil

	case "shift+tab", "up":
		f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
		f.focusInput(f.focus)
		return f, nil

	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.focus++
			f.focusInput(f.focus)
			return f, nil
		}
		return f.commitForm()
	}

	return f.forward(msg)
}

func (f *Funnel) commitForm() (tea.Model, tea.Cmd) {
	f.errMsg = ""

	if f.phase == phaseContact {
		err := f.ctrl.SubmitContact(flow.Contact{
			Name:  f.inputs[0].Value(),
			Email: f.inputs[1].Value(),
			Phone: f.inputs[2].Value(),
		})
		if err != nil {
			f.errMsg = formError(err)
			return f, nil
		}
		f.enterCompany()
		return f, nil
	}

	err := f.ctrl.SubmitCompany(context.Background(), flow.Company{
		Name:    f.inputs[0].Value(),
		Segment: f.inputs[1].Value(),
		Size:    f.inputs[2].Value(),
	})
	if err != nil {
		f.errMsg = formError(err)
		return f, nil
	}
	f.enterQuestion()
	return f, nil
}

func (f *Funnel) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "left":
		f.ctrl.Back()
		if f.ctrl.Step() == flow.StepCompany {
			f.enterCompany()
		} else {
			f.enterQuestion()
		}
		return f, nil

	case "enter":
		value := f.options.Value()
		f.errMsg = ""
		f.phase = phaseSubmitting
		return f, func() tea.Msg {
			return answeredMsg{Err: f.ctrl.Answer(context.Background(), value)}
		}
	}

	var cmd tea.Cmd
	f.options, cmd = f.options.Update(msg)
	return f, cmd
}

func (f *Funnel) handleAnswered(msg answeredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		f.phase = phaseQuestions
		var persist *flow.ErrPersistFailed
		if errors.As(msg.Err, &persist) {
			f.errMsg = "Não foi possível salvar suas respostas. Pressione Enter para tentar novamente."
		} else {
			f.errMsg = msg.Err.Error()
		}
		return f, nil
	}

	if f.ctrl.Step() == flow.StepDone {
		f.phase = phaseLoading
		res := f.ctrl.Result()
		return f, func() tea.Msg {
			return resultReadyMsg{View: f.results.Build(context.Background(), res)}
		}
	}

	f.enterQuestion()
	return f, nil
}

// forward routes non-key messages (and typed characters) to the
// focused input.
func (f *Funnel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.phase != phaseContact && f.phase != phaseCompany {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func formError(err error) string {
	var missing *flow.ErrMissingFields
	if errors.As(err, &missing) {
		return "Preencha todos os campos obrigatórios para continuar."
	}
	return err.Error()
}

// Run starts the interactive funnel.
func Run(ctrl *flow.Controller, results *result.Service) error {
	p := tea.NewProgram(New(ctrl, results))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
