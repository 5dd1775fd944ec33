// Package account holds the state of the mock account screen and the pure
// transitions that drive it. Nothing here performs I/O; the presentation
// layer feeds actions in and decides how to surface a failed Result.
package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Phase is the connection flag of the screen.
type Phase string

const (
	PhaseDisconnected        Phase = "disconnected"
	PhaseEnteringCredentials Phase = "entering_credentials"
	PhaseConnected           Phase = "connected"
)

// Session is the mock account session. It is never cleared once connected.
type Session struct {
	Phase    Phase  `json:"phase"`
	UserName string `json:"user_name"`
}

// Transaction is a user-entered statement entry.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Forms holds the transient text buffers of the screen.
type Forms struct {
	UserName    string `json:"user_name"`
	Password    string `json:"-"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// State is everything the screen owns.
type State struct {
	Session        Session         `json:"session"`
	Forms          Forms           `json:"forms"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Transactions   []Transaction   `json:"transactions"`
}

// New returns a disconnected state whose balance starts at initial.
func New(initial decimal.Decimal) State {
	return State{
		Session:        Session{Phase: PhaseDisconnected},
		InitialBalance: initial,
		Balance:        initial,
	}
}

// Connected reports whether a session is active.
func (s State) Connected() bool { return s.Session.Phase == PhaseConnected }

// Total is the sum of all transaction amounts.
func (s State) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range s.Transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// Consistent reports whether Balance == InitialBalance - Total().
func (s State) Consistent() bool {
	return s.Balance.Equal(s.InitialBalance.Sub(s.Total()))
}

// Reason explains why a transition was rejected.
type Reason string

const (
	ReasonNone                     Reason = ""
	ReasonMissingCredentials       Reason = "missing_credentials"
	ReasonMissingTransactionFields Reason = "missing_transaction_fields"
	ReasonInvalidAmount            Reason = "invalid_amount"
	ReasonNotConnected             Reason = "not_connected"
	ReasonInvalidPhase             Reason = "invalid_phase"
)

var (
	ErrMissingCredentials       = errors.New("username and password are required")
	ErrMissingTransactionFields = errors.New("amount and description are required")
	ErrInvalidAmount            = errors.New("amount is not a number")
	ErrNotConnected             = errors.New("account not connected")
	ErrInvalidPhase             = errors.New("action not allowed in current phase")
)

var reasonErrs = map[Reason]error{
	ReasonMissingCredentials:       ErrMissingCredentials,
	ReasonMissingTransactionFields: ErrMissingTransactionFields,
	ReasonInvalidAmount:            ErrInvalidAmount,
	ReasonNotConnected:             ErrNotConnected,
	ReasonInvalidPhase:             ErrInvalidPhase,
}

// Result is the outcome of a transition.
type Result struct {
	OK     bool
	Reason Reason
	// Detail carries the offending input for ReasonInvalidAmount.
	Detail string
}

func ok() Result { return Result{OK: true} }

func fail(r Reason) Result { return Result{Reason: r} }

// Err maps a failed result to its sentinel error, nil on success.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	base, found := reasonErrs[r.Reason]
	if !found {
		return fmt.Errorf("unknown rejection %q", r.Reason)
	}
	if r.Detail != "" {
		return fmt.Errorf("%w: %q", base, r.Detail)
	}
	return base
}
