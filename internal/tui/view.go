package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jask/contapix/internal/account"
)

const contentWidth = 48

func (s *Screen) View() string {
	var body string
	switch s.state.Session.Phase {
	case account.PhaseEnteringCredentials:
		body = s.renderCredentials()
	case account.PhaseConnected:
		body = s.renderConnected(s.renderStatement())
	default:
		body = buttonStyle.Render("+ Conectar conta")
	}
	view := s.frame(body)
	if s.alert == "" {
		return view
	}
	if s.width == 0 || s.height == 0 {
		return view + "\n\n" + s.renderAlert()
	}
	return overlayCentered(view, s.renderAlert(), s.width, s.height)
}

// frame wraps body with the header, status line and help footer.
func (s *Screen) frame(body string) string {
	parts := []string{s.renderHeader(), "", body}
	if s.status != "" {
		parts = append(parts, "", statusStyle.Render(s.status))
	}
	parts = append(parts, "", s.help.View(helpKeys(s.activeBindings())))
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

func (s *Screen) renderHeader() string {
	title := titleStyle.Render(s.title)
	if !s.state.Connected() {
		return title
	}
	user := userStyle.Render(s.state.Session.UserName)
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(user)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + user
}

func (s *Screen) renderCredentials() string {
	lines := make([]string, 0, len(s.credInputs)+2)
	for _, in := range s.credInputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "", buttonStyle.Render("Conectar"))
	return panelStyle.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderConnected(statement string) string {
	balance := balanceBoxStyle.Width(contentWidth).Render(
		"Saldo disponível\n" + balanceValueStyle.Render(s.money(s.state.Balance)),
	)

	form := []string{sectionTitleStyle.Render("Adicionar Transação PIX")}
	for _, in := range s.txInputs {
		form = append(form, in.View())
	}
	form = append(form, "", buttonStyle.Render("Adicionar Transação"))

	return strings.Join([]string{
		balance,
		"",
		panelStyle.Width(contentWidth).Render(strings.Join(form, "\n")),
		"",
		statementStyle.Width(contentWidth).Render(statement),
	}, "\n")
}

func (s *Screen) renderStatement() string {
	lines := []string{sectionTitleStyle.Render("Extrato")}
	txs := s.state.Transactions
	if len(txs) == 0 {
		return strings.Join(append(lines, emptyStyle.Render("Nenhuma transação encontrada.")), "\n")
	}
	start, end := s.window()
	for _, tx := range txs[start:end] {
		lines = append(lines, s.renderRow(tx))
	}
	if end-start < len(txs) {
		lines = append(lines, positionLine(end, len(txs)))
	}
	return strings.Join(lines, "\n")
}

func positionLine(shown, total int) string {
	return statusStyle.Render(fmt.Sprintf("%d/%d", shown, total))
}

func (s *Screen) renderRow(tx account.Transaction) string {
	amount := amountStyle.Render(s.money(tx.Amount))
	inner := contentWidth - 4
	desc := clip(tx.Description, max(inner-lipgloss.Width(amount)-1, 1))
	gap := max(inner-lipgloss.Width(desc)-lipgloss.Width(amount), 1)
	return desc + strings.Repeat(" ", gap) + amount
}

func (s *Screen) renderAlert() string {
	return alertStyle.Render(alertTitleStyle.Render("Atenção") + "\n" + s.alert + "\n\n" + buttonStyle.Render("OK"))
}

func (s *Screen) money(d decimal.Decimal) string {
	return s.currency + " " + d.StringFixed(2)
}

func (s *Screen) activeBindings() []key.Binding {
	if s.alert != "" {
		return []key.Binding{s.keys.Dismiss, s.keys.ForceQ}
	}
	switch s.state.Session.Phase {
	case account.PhaseEnteringCredentials:
		return []key.Binding{s.keys.Submit, s.keys.NextIn, s.keys.ForceQ}
	case account.PhaseConnected:
		return []key.Binding{s.keys.Add, s.keys.NextIn, s.keys.ScrollUp, s.keys.ScrollDn, s.keys.ForceQ}
	default:
		return []key.Binding{s.keys.Connect, s.keys.Quit}
	}
}

// statementRows is how many statement rows fit; 0 means no limit.
func (s *Screen) statementRows() int {
	if s.height == 0 {
		return 0
	}
	return max(s.height-s.statementChrome(), 1)
}

// statementChrome is the height of the connected view with no statement
// rows, counting the position line shown while the statement is cut.
func (s *Screen) statementChrome() int {
	empty := sectionTitleStyle.Render("Extrato") + "\n" + positionLine(0, 0)
	return lipgloss.Height(s.frame(s.renderConnected(empty)))
}

func (s *Screen) maxScroll() int {
	rows := s.statementRows()
	n := len(s.state.Transactions)
	if rows == 0 || n <= rows {
		return 0
	}
	return n - rows
}

// window returns the visible statement slice bounds.
func (s *Screen) window() (int, int) {
	n := len(s.state.Transactions)
	rows := s.statementRows()
	if rows == 0 || n <= rows {
		return 0, n
	}
	start := s.scroll
	if start > n-rows {
		start = n - rows
	}
	if start < 0 {
		start = 0
	}
	return start, start + rows
}
