package tui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/contapix/internal/account"
	"github.com/jask/contapix/internal/config"
)

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestScreen(t *testing.T) (*Screen, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := New(Options{
		InitialBalance: decimal.RequireFromString("40000.00"),
		IDs:            &account.CounterGenerator{},
		Logger:         log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
	})
	return s, &buf
}

func send(s *Screen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func connect(t *testing.T, s *Screen) {
	t.Helper()
	send(s, typed("c"), typed("ana"), tab, typed("x"), enter)
	require.Empty(t, s.Alert())
	require.True(t, s.State().Connected())
}

func TestDisconnectedView(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	v := s.View()
	require.Contains(t, v, "PicPay")
	require.Contains(t, v, "+ Conectar conta")
	require.NotContains(t, v, "Saldo disponível")
}

func TestBeginConnectShowsCredentialForm(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	send(s, typed("c"))
	require.Equal(t, account.PhaseEnteringCredentials, s.State().Session.Phase)
	v := s.View()
	require.Contains(t, v, "Nome de usuário")
	require.Contains(t, v, "Conectar")
	require.NotContains(t, v, "+ Conectar conta")
}

func TestCredentialInputsMirrorIntoState(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	send(s, typed("c"), typed("ana"), tab, typed("segredo"))
	forms := s.State().Forms
	require.Equal(t, "ana", forms.UserName)
	require.Equal(t, "segredo", forms.Password)
	require.NotContains(t, s.View(), "segredo")
}

func TestSubmitCredentialsMissingFieldAlerts(t *testing.T) {
	t.Parallel()

	s, logs := newTestScreen(t)
	send(s, typed("c"), typed("ana"), enter)
	require.Equal(t, alertMissingCredentials, s.Alert())
	require.Equal(t, account.PhaseEnteringCredentials, s.State().Session.Phase)
	require.Empty(t, s.State().Session.UserName)
	require.Contains(t, s.View(), alertMissingCredentials)
	require.Contains(t, logs.String(), "missing_credentials")

	// the alert swallows input until dismissed
	send(s, typed("zzz"))
	require.Equal(t, "ana", s.State().Forms.UserName)
	send(s, esc)
	require.Empty(t, s.Alert())

	send(s, tab, typed("x"), enter)
	require.True(t, s.State().Connected())
	require.Equal(t, "ana", s.State().Session.UserName)
}

func TestConnectClearsInputsAndShowsAccount(t *testing.T) {
	t.Parallel()

	s, logs := newTestScreen(t)
	connect(t, s)
	require.Empty(t, s.State().Forms.UserName)
	require.Empty(t, s.State().Forms.Password)
	for _, in := range s.credInputs {
		require.Empty(t, in.Value())
	}
	v := s.View()
	require.Contains(t, v, "ana")
	require.Contains(t, v, "Saldo disponível")
	require.Contains(t, v, "R$ 40000.00")
	require.Contains(t, v, "Nenhuma transação encontrada.")
	require.Contains(t, logs.String(), "phase changed")
}

func TestAddTransactionEndToEnd(t *testing.T) {
	t.Parallel()

	s, logs := newTestScreen(t)
	connect(t, s)
	send(s, typed("150.5"), tab, typed("Pagamento"), enter)

	st := s.State()
	require.Empty(t, s.Alert())
	require.Equal(t, "39849.50", st.Balance.StringFixed(2))
	require.Len(t, st.Transactions, 1)
	require.Equal(t, "Pagamento", st.Transactions[0].Description)
	require.True(t, st.Transactions[0].Amount.Equal(decimal.RequireFromString("150.5")))
	require.Equal(t, "tx-1", st.Transactions[0].ID)
	for _, in := range s.txInputs {
		require.Empty(t, in.Value())
	}

	v := s.View()
	require.Contains(t, v, "R$ 39849.50")
	require.Contains(t, v, "R$ 150.50")
	require.Contains(t, v, statusTxAdded)
	require.NotContains(t, v, "Nenhuma transação encontrada.")
	require.Contains(t, logs.String(), "transaction added")
}

func TestAddTransactionMissingDescription(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	connect(t, s)
	send(s, typed("10"), enter)

	require.Equal(t, alertMissingTxFields, s.Alert())
	require.Empty(t, s.State().Transactions)
	require.Equal(t, "40000.00", s.State().Balance.StringFixed(2))
	require.Equal(t, "10", s.State().Forms.Amount)
	require.Equal(t, "10", s.txInputs[0].Value())
}

func TestAddTransactionInvalidAmount(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	connect(t, s)
	send(s, typed("dez"), tab, typed("Pagamento"), enter)

	require.Equal(t, alertInvalidAmount, s.Alert())
	require.Empty(t, s.State().Transactions)
	require.Equal(t, "40000.00", s.State().Balance.StringFixed(2))
}

func TestTransactionsKeepSubmissionOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	connect(t, s)
	descs := []string{"Mercado", "Aluguel", "Salário"}
	amounts := []string{"100", "2500", "-5000"}
	for i := range descs {
		send(s, typed(amounts[i]), tab, typed(descs[i]), enter)
	}
	st := s.State()
	require.Len(t, st.Transactions, 3)
	for i, tx := range st.Transactions {
		require.Equal(t, descs[i], tx.Description)
	}
	require.Equal(t, "42400.00", st.Balance.StringFixed(2))
	require.True(t, st.Consistent())

	v := s.View()
	require.Less(t, strings.Index(v, "Mercado"), strings.Index(v, "Aluguel"))
	require.Less(t, strings.Index(v, "Aluguel"), strings.Index(v, "Salário"))
}

func TestStatementFitsTerminal(t *testing.T) {
	t.Parallel()

	const height = 30
	s, _ := newTestScreen(t)
	send(s, tea.WindowSizeMsg{Width: 80, Height: height})
	connect(t, s)

	descs := make([]string, 11)
	for i := range descs {
		descs[i] = fmt.Sprintf("item%02d", i+1)
		send(s, typed("1"), tab, typed(descs[i]), enter)
	}
	rows := s.statementRows()
	require.Greater(t, rows, 0)
	require.Less(t, rows, len(descs))
	require.Equal(t, len(descs)-rows, s.scroll)

	v := s.View()
	require.LessOrEqual(t, lipgloss.Height(v), height)
	require.Contains(t, v, "ana")
	require.Contains(t, v, statusTxAdded)
	require.Contains(t, v, "11/11")
	require.Contains(t, v, descs[10])
	require.NotContains(t, v, descs[0])

	// typing clears the status line and leaves room for more rows
	send(s, typed("9"))
	require.LessOrEqual(t, lipgloss.Height(s.View()), height)

	// an alert keeps the footer on screen
	send(s, enter)
	require.Equal(t, alertMissingTxFields, s.Alert())
	v = s.View()
	require.Equal(t, height, lipgloss.Height(v))
	require.Contains(t, v, "ctrl+c")
	require.Contains(t, v, "ana")
	send(s, esc)

	for range descs {
		send(s, tea.KeyMsg{Type: tea.KeyUp})
	}
	require.Equal(t, 0, s.scroll)
	v = s.View()
	require.LessOrEqual(t, lipgloss.Height(v), height)
	require.Contains(t, v, descs[0])
	require.NotContains(t, v, descs[10])

	send(s, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, s.scroll)
}

func TestNegativeBalanceIsShown(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	connect(t, s)
	send(s, typed("50000"), tab, typed("Carro"), enter)

	require.Empty(t, s.Alert())
	require.Equal(t, "-10000.00", s.State().Balance.StringFixed(2))
	require.True(t, s.State().Consistent())
	require.Contains(t, s.View(), "R$ -10000.00")
}

func TestExponentAmountAlerts(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	connect(t, s)
	send(s, typed("1e900000000"), tab, typed("x"), enter)

	require.Equal(t, alertInvalidAmount, s.Alert())
	require.Empty(t, s.State().Transactions)
	require.Equal(t, "40000.00", s.State().Balance.StringFixed(2))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	s, _ := newTestScreen(t)
	cmd := send(s, typed("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	s, _ = newTestScreen(t)
	connect(t, s)
	// q is text while a field is focused
	send(s, typed("q"))
	require.Equal(t, "q", s.State().Forms.Amount)
	require.True(t, s.State().Connected())

	cmd = send(s, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Account: config.AccountConfig{InitialBalance: "10.00", IDStrategy: "counter"},
		UI:      config.UIConfig{Title: "Carteira", CurrencySymbol: "US$"},
	}
	opts, err := OptionsFromConfig(cfg, nil)
	require.NoError(t, err)
	s := New(opts)
	require.Contains(t, s.View(), "Carteira")
	connect(t, s)
	require.Contains(t, s.View(), "US$ 10.00")
	send(s, typed("1"), tab, typed("x"), enter)
	require.Equal(t, "tx-1", s.State().Transactions[0].ID)

	bad := cfg
	bad.Account.InitialBalance = "x"
	_, err = OptionsFromConfig(bad, nil)
	require.Error(t, err)

	bad = cfg
	bad.Account.IDStrategy = "random"
	_, err = OptionsFromConfig(bad, nil)
	require.ErrorContains(t, err, "random")
}
