package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/models"
	"github.com/iudanet/omnicard/internal/reveal"
)

const (
	invalidInputNotice = "Invalid input"
	emptyWalletNotice  = "Create a card to get started."
)

// cardsChangedMsg carries the list pushed by the wallet subscription
type cardsChangedMsg struct {
	cards []*models.Card
}

type model struct {
	ctx       context.Context
	wallet    wallet.Service
	formatter reveal.Formatter
	logger    *slog.Logger

	updates     chan []*models.Card
	done        chan struct{}
	unsubscribe func()
	copyText    func(string) error

	cards     []*models.Card
	selection *reveal.Selection
	form      *cardFormModel
	err       error
	status    string
	cursor    int
	keys      listKeyMap
	help      help.Model
}

// newModel loads the cards and the saved display mode, then subscribes to
// wallet changes. The caller must call unsubscribe when done.
func newModel(ctx context.Context, svc wallet.Service, formatter reveal.Formatter, logger *slog.Logger) (model, error) {
	cards, err := svc.ListCards(ctx)
	if err != nil {
		return model{}, err
	}

	multi, err := svc.MultiDisplay(ctx)
	if err != nil {
		return model{}, err
	}
	mode := reveal.Single
	if multi {
		mode = reveal.Multi
	}

	m := model{
		ctx:       ctx,
		wallet:    svc,
		formatter: formatter,
		logger:    logger,
		updates:   make(chan []*models.Card, 1),
		done:      make(chan struct{}),
		cards:     cards,
		selection: reveal.NewSelection(mode),
		keys:      defaultListKeyMap,
		help:      help.New(),
		copyText:  clipboard.WriteAll,
	}

	updates, done := m.updates, m.done
	stop := svc.Subscribe(func(cards []*models.Card) {
		// Оставляем в канале только последний список
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- cards:
		case <-done:
		}
	})

	// done закрывается после отписки и освобождает ожидающий waitForCards
	var once sync.Once
	m.unsubscribe = func() {
		once.Do(func() {
			stop()
			close(done)
		})
	}

	return m, nil
}

// waitForCards ждет следующего списка от подписки или отписки
func waitForCards(updates <-chan []*models.Card, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case cards := <-updates:
			return cardsChangedMsg{cards: cards}
		case <-done:
			return nil
		}
	}
}

func (m model) Init() tea.Cmd {
	return waitForCards(m.updates, m.done)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case cardsChangedMsg:
		m.setCards(msg.cards)
		return m, waitForCards(m.updates, m.done)

	case submitCardMsg:
		return m.addCard(msg.input)

	case cancelFormMsg:
		m.form = nil
		return m, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	m.status = ""

	switch {
	case key.Matches(kmsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(kmsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(kmsg, m.keys.Down):
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}

	case key.Matches(kmsg, m.keys.Toggle):
		if card := m.current(); card != nil {
			m.selection.Toggle(card.ID)
		}

	case key.Matches(kmsg, m.keys.Mode):
		mode := m.selection.ToggleMode()
		if err := m.wallet.SetMultiDisplay(m.ctx, mode == reveal.Multi); err != nil {
			m.logger.ErrorContext(m.ctx, "failed to save display mode", "error", err)
			m.err = err
		}

	case key.Matches(kmsg, m.keys.Add):
		form := newCardFormModel()
		m.form = &form
		return m, form.Init()

	case key.Matches(kmsg, m.keys.Delete):
		card := m.current()
		if card == nil {
			break
		}
		m.selection.Clear()
		if err := m.wallet.DeleteCard(m.ctx, card.ID); err != nil {
			m.logger.ErrorContext(m.ctx, "failed to delete card", "id", card.ID, "error", err)
			m.err = err
			break
		}
		m.status = "Card deleted"
		m.reload()

	case key.Matches(kmsg, m.keys.Copy):
		card := m.current()
		// Копировать можно только раскрытую карту
		if card == nil || !m.selection.IsRevealed(card.ID) {
			m.status = "Reveal the card to copy its number"
			break
		}
		if err := m.copyText(card.Number); err != nil {
			m.err = fmt.Errorf("failed to copy number: %w", err)
			break
		}
		m.status = "Card number copied"

	case key.Matches(kmsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// addCard сохраняет карту из формы; при ошибке ввода форма остается открытой
func (m model) addCard(in models.CardInput) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	card, err := m.wallet.AddCard(m.ctx, in)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidInput) {
			m.form.alert = invalidInputNotice
			return m, nil
		}
		m.form = nil
		m.err = err
		return m, nil
	}

	m.form = nil
	m.status = fmt.Sprintf("Card %s added", displayNickname(card))
	m.reload()
	return m, nil
}

// reload перечитывает список сразу после изменения, не дожидаясь подписки
func (m *model) reload() {
	cards, err := m.wallet.ListCards(m.ctx)
	if err != nil {
		m.logger.ErrorContext(m.ctx, "failed to reload cards", "error", err)
		m.err = err
		return
	}
	m.setCards(cards)
}

// setCards заменяет список и удерживает курсор в его пределах
func (m *model) setCards(cards []*models.Card) {
	m.cards = cards
	if m.cursor >= len(cards) {
		m.cursor = max(len(cards)-1, 0)
	}
}

func (m model) current() *models.Card {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return nil
	}
	return m.cards[m.cursor]
}

func (m model) View() string {
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("OmniCard"))
	b.WriteString("\n")
	b.WriteString(modeStyle.Render("Display: " + m.selection.Mode().String()))
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		b.WriteString(helpStyle.Render(emptyWalletNotice))
		b.WriteString("\n")
	}

	for i, card := range m.cards {
		b.WriteString(m.renderCard(card, i == m.cursor))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m model) renderCard(card *models.Card, selected bool) string {
	view := m.formatter.Card(card, m.selection.IsRevealed(card.ID))

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		nicknameStyle.Render(displayNickname(card)),
		"  ",
		networkStyle.Render(view.Network.DisplayName()),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		view.Name,
		view.Number,
		view.Expiration+"   "+view.SecurityCode,
	)

	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func displayNickname(card *models.Card) string {
	if card.Nickname == "" {
		return "(no nickname)"
	}
	return card.Nickname
}
