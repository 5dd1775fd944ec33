// Package tui renders the account screen with Bubble Tea. All screen state
// lives in an account.State; the text inputs only mirror its form buffers.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/jask/contapix/internal/account"
	"github.com/jask/contapix/internal/config"
)

const (
	alertMissingCredentials = "Por favor, preencha todos os campos."
	alertMissingTxFields    = "Por favor, preencha todos os campos da transação."
	alertInvalidAmount      = "Valor inválido."
	statusTxAdded           = "transação adicionada"
)

// Options configures a Screen.
type Options struct {
	Title          string
	CurrencySymbol string
	InitialBalance decimal.Decimal
	IDs            account.IDGenerator
	Logger         *log.Logger
}

// OptionsFromConfig builds Options from the loaded config.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) (Options, error) {
	initial, err := cfg.InitialBalance()
	if err != nil {
		return Options{}, err
	}
	ids, err := account.NewIDGenerator(cfg.Account.IDStrategy)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Title:          cfg.UI.Title,
		CurrencySymbol: cfg.UI.CurrencySymbol,
		InitialBalance: initial,
		IDs:            ids,
		Logger:         logger,
	}, nil
}

// Screen is the account screen model.
type Screen struct {
	state    account.State
	ids      account.IDGenerator
	logger   *log.Logger
	title    string
	currency string

	keys keyMap
	help help.Model

	credInputs []textinput.Model
	txInputs   []textinput.Model
	focus      int

	alert  string
	status string
	scroll int
	width  int
	height int
}

var (
	credFields = []account.Field{account.FieldUserName, account.FieldPassword}
	txFields   = []account.Field{account.FieldAmount, account.FieldDescription}
)

// New returns a disconnected screen.
func New(opts Options) *Screen {
	if opts.IDs == nil {
		opts.IDs = account.UUIDGenerator{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Title == "" {
		opts.Title = "PicPay"
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "R$"
	}

	user := newInput("Nome de usuário")
	pass := newInput("Senha")
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	amount := newInput("Valor (ex: 50.00)")
	desc := newInput("Descrição (ex: Pagamento de conta)")

	return &Screen{
		state:      account.New(opts.InitialBalance),
		ids:        opts.IDs,
		logger:     opts.Logger,
		title:      opts.Title,
		currency:   opts.CurrencySymbol,
		keys:       newKeyMap(),
		help:       help.New(),
		credInputs: []textinput.Model{user, pass},
		txInputs:   []textinput.Model{amount, desc},
	}
}

func newInput(placeholder string) textinput.Model {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "│ "
	inp.Width = 36
	return inp
}

// State returns a copy of the screen state.
func (s *Screen) State() account.State { return s.state }

// Alert returns the pending validation alert, empty when none is open.
func (s *Screen) Alert() string { return s.alert }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		s.help.Width = m.Width
		return s, nil
	case tea.KeyMsg:
		if key.Matches(m, s.keys.ForceQ) {
			return s, tea.Quit
		}
		if s.alert != "" {
			if key.Matches(m, s.keys.Dismiss) {
				s.alert = ""
			}
			return s, nil
		}
		switch s.state.Session.Phase {
		case account.PhaseDisconnected:
			return s.updateDisconnected(m)
		case account.PhaseEnteringCredentials:
			return s.updateCredentials(m)
		case account.PhaseConnected:
			return s.updateConnected(m)
		}
	}
	return s, nil
}

func (s *Screen) updateDisconnected(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(m, s.keys.Connect):
		if s.dispatch(account.BeginConnect{}) {
			s.focus = 0
			return s, s.credInputs[0].Focus()
		}
	}
	return s, nil
}

func (s *Screen) updateCredentials(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, s.keys.Submit):
		if s.dispatch(account.SubmitCredentials{}) {
			s.syncInputs(s.credInputs, credFields)
			s.blurAll(s.credInputs)
			s.focus = 0
			return s, s.txInputs[0].Focus()
		}
		return s, nil
	case key.Matches(m, s.keys.NextIn):
		return s, s.moveFocus(s.credInputs, 1)
	case key.Matches(m, s.keys.PrevIn):
		return s, s.moveFocus(s.credInputs, -1)
	}
	return s, s.typeInto(s.credInputs, credFields, m)
}

func (s *Screen) updateConnected(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, s.keys.Add):
		if s.dispatch(account.AddTransaction{}) {
			s.syncInputs(s.txInputs, txFields)
			s.status = statusTxAdded
			s.scroll = s.maxScroll()
			s.txInputs[s.focus].Blur()
			s.focus = 0
			return s, s.txInputs[0].Focus()
		}
		return s, nil
	case key.Matches(m, s.keys.NextIn):
		return s, s.moveFocus(s.txInputs, 1)
	case key.Matches(m, s.keys.PrevIn):
		return s, s.moveFocus(s.txInputs, -1)
	case key.Matches(m, s.keys.ScrollUp):
		s.scroll = min(s.scroll, s.maxScroll())
		if s.scroll > 0 {
			s.scroll--
		}
		return s, nil
	case key.Matches(m, s.keys.ScrollDn):
		if s.scroll < s.maxScroll() {
			s.scroll++
		}
		return s, nil
	}
	return s, s.typeInto(s.txInputs, txFields, m)
}

// dispatch applies a to the state. A rejection opens the alert instead.
func (s *Screen) dispatch(a account.Action) bool {
	next, res := account.Apply(s.state, a, s.ids)
	if !res.OK {
		s.alert = alertFor(res.Reason)
		s.status = ""
		s.logger.Warn("action rejected", "action", actionName(a), "reason", res.Reason, "err", res.Err())
		return false
	}
	prev := s.state
	s.state = next
	if prev.Session.Phase != next.Session.Phase {
		s.logger.Info("phase changed", "from", prev.Session.Phase, "to", next.Session.Phase, "user", next.Session.UserName)
	}
	if len(next.Transactions) > len(prev.Transactions) {
		tx := next.Transactions[len(next.Transactions)-1]
		s.logger.Info("transaction added", "id", tx.ID, "amount", tx.Amount.String(), "balance", next.Balance.String())
	}
	return true
}

// typeInto forwards a key to the focused input and mirrors its value into
// the matching form buffer.
func (s *Screen) typeInto(inputs []textinput.Model, fields []account.Field, m tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	inputs[s.focus], cmd = inputs[s.focus].Update(m)
	field := fields[s.focus]
	value := inputs[s.focus].Value()
	if next, res := account.Set(s.state, field, value); res.OK {
		s.state = next
		s.status = ""
	}
	if field != account.FieldPassword {
		s.logger.Debug("field edited", "field", field, "len", len(value))
	}
	return cmd
}

func (s *Screen) moveFocus(inputs []textinput.Model, dir int) tea.Cmd {
	inputs[s.focus].Blur()
	s.focus = (s.focus + dir + len(inputs)) % len(inputs)
	return inputs[s.focus].Focus()
}

func (s *Screen) blurAll(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Blur()
	}
}

// syncInputs copies the form buffers back into the inputs, e.g. after a
// successful submit clears them.
func (s *Screen) syncInputs(inputs []textinput.Model, fields []account.Field) {
	for i, f := range fields {
		inputs[i].SetValue(formValue(s.state.Forms, f))
	}
}

func formValue(f account.Forms, field account.Field) string {
	switch field {
	case account.FieldUserName:
		return f.UserName
	case account.FieldPassword:
		return f.Password
	case account.FieldAmount:
		return f.Amount
	case account.FieldDescription:
		return f.Description
	}
	return ""
}

func alertFor(r account.Reason) string {
	switch r {
	case account.ReasonMissingCredentials:
		return alertMissingCredentials
	case account.ReasonMissingTransactionFields:
		return alertMissingTxFields
	case account.ReasonInvalidAmount:
		return alertInvalidAmount
	default:
		return "Ação indisponível."
	}
}

func actionName(a account.Action) string {
	switch a.(type) {
	case account.BeginConnect:
		return "begin_connect"
	case account.SubmitCredentials:
		return "submit_credentials"
	case account.AddTransaction:
		return "add_transaction"
	case account.SetField:
		return "set_field"
	}
	return "unknown"
}
