package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/jask/contapix/internal/account"
	"github.com/jask/contapix/internal/tui"
)

// runValidation drives the screen through connect + one transaction without
// a terminal and checks the resulting balance.
func runValidation(w io.Writer) error {
	logger := log.NewWithOptions(w, log.Options{Level: log.InfoLevel, Prefix: "validate"})
	screen := tui.New(tui.Options{
		InitialBalance: decimal.RequireFromString("40000.00"),
		IDs:            &account.CounterGenerator{},
		Logger:         logger,
	})

	steps := []tea.Msg{
		runes("c"),
		runes("ana"), tea.KeyMsg{Type: tea.KeyTab}, runes("x"),
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("150.5"), tea.KeyMsg{Type: tea.KeyTab}, runes("Pagamento"),
		tea.KeyMsg{Type: tea.KeyEnter},
	}
	for _, msg := range steps {
		screen.Update(msg)
		if a := screen.Alert(); a != "" {
			return fmt.Errorf("unexpected alert: %s", a)
		}
	}

	st := screen.State()
	if !st.Connected() || st.Session.UserName != "ana" {
		return fmt.Errorf("session = %+v, want connected as ana", st.Session)
	}
	if len(st.Transactions) != 1 {
		return fmt.Errorf("transactions = %d, want 1", len(st.Transactions))
	}
	tx := st.Transactions[0]
	if tx.Description != "Pagamento" || !tx.Amount.Equal(decimal.RequireFromString("150.5")) {
		return fmt.Errorf("transaction = %+v", tx)
	}
	if got := st.Balance.StringFixed(2); got != "39849.50" {
		return fmt.Errorf("balance = %s, want 39849.50", got)
	}
	if !st.Consistent() {
		return fmt.Errorf("balance %s does not match transactions", st.Balance)
	}
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
