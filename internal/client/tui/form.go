package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/omnicard/internal/models"
)

// submitCardMsg is sent when the form is submitted from its last field
type submitCardMsg struct {
	input models.CardInput
}

// cancelFormMsg is sent when the user leaves the form
type cancelFormMsg struct{}

// Порядок полей формы
const (
	fieldNickname = iota
	fieldName
	fieldNumber
	fieldMonth
	fieldYear
	fieldSecurityCode
	fieldCount
)

type cardFormModel struct {
	inputs     []textinput.Model
	alert      string
	focusIndex int
	keys       formKeyMap
	help       help.Model
}

func newCardFormModel() cardFormModel {
	m := cardFormModel{
		inputs: make([]textinput.Model, fieldCount),
		keys:   defaultFormKeyMap,
		help:   help.New(),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedInputStyle
		t.CharLimit = 64
		t.Width = 32

		switch i {
		case fieldNickname:
			t.Prompt = "Nickname:      "
			t.Placeholder = "Travel Visa"
		case fieldName:
			t.Prompt = "Name on card:  "
			t.Placeholder = "Kevin Chen"
		case fieldNumber:
			t.Prompt = "Card Number:   "
			t.Placeholder = "4111 1111 1111 1111"
		case fieldMonth:
			t.Prompt = "Month:         "
			t.Placeholder = "MM"
			t.CharLimit = 8
		case fieldYear:
			t.Prompt = "Year:          "
			t.Placeholder = "YYYY"
			t.CharLimit = 8
		case fieldSecurityCode:
			t.Prompt = "Security Code: "
			t.Placeholder = "CVV"
			t.CharLimit = 8
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}

	m.inputs[fieldNickname].Focus()
	m.inputs[fieldNickname].TextStyle = focusedInputStyle

	return m
}

func (m cardFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m cardFormModel) Update(msg tea.Msg) (cardFormModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		// Пока показано предупреждение, принимаем только его закрытие
		if m.alert != "" {
			if key.Matches(kmsg, m.keys.Submit, m.keys.Cancel) {
				m.alert = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(kmsg, m.keys.Cancel):
			return m, func() tea.Msg { return cancelFormMsg{} }

		case key.Matches(kmsg, m.keys.Submit):
			if m.focusIndex == fieldCount-1 {
				in := m.input()
				return m, func() tea.Msg { return submitCardMsg{input: in} }
			}
			return m, m.focus(m.focusIndex + 1)

		case key.Matches(kmsg, m.keys.Next):
			return m, m.focus(m.focusIndex + 1)

		case key.Matches(kmsg, m.keys.Prev):
			return m, m.focus(m.focusIndex - 1)
		}
	}

	// Ввод символов и мигание курсора
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// focus перемещает фокус на поле index, переходя через края по кругу
func (m *cardFormModel) focus(index int) tea.Cmd {
	m.focusIndex = (index + fieldCount) % fieldCount

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focusIndex {
			cmd = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedInputStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return cmd
}

// input collects the raw field values. No trimming or validation happens here.
func (m cardFormModel) input() models.CardInput {
	return models.CardInput{
		Nickname:        m.inputs[fieldNickname].Value(),
		Name:            m.inputs[fieldName].Value(),
		Number:          m.inputs[fieldNumber].Value(),
		ExpirationMonth: m.inputs[fieldMonth].Value(),
		ExpirationYear:  m.inputs[fieldYear].Value(),
		SecurityCode:    m.inputs[fieldSecurityCode].Value(),
	}
}

func (m cardFormModel) View() string {
	items := []string{titleStyle.Render("Add Card")}
	for i := range m.inputs {
		items = append(items, m.inputs[i].View())
	}

	if m.alert != "" {
		alert := lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Bold(true).Render(m.alert),
			"",
			helpStyle.Render("(enter or esc to dismiss)"),
		)
		items = append(items, "", dialogBoxStyle.Render(alert))
	}

	items = append(items, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}
