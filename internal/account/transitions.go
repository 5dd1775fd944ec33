package account

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names a form buffer.
type Field string

const (
	FieldUserName    Field = "user_name"
	FieldPassword    Field = "password"
	FieldAmount      Field = "amount"
	FieldDescription Field = "description"
)

// Action is one user intent. The set is closed to this package.
type Action interface{ isAction() }

type (
	BeginConnect      struct{}
	SubmitCredentials struct{}
	AddTransaction    struct{}
	SetField          struct {
		Field Field
		Value string
	}
)

func (BeginConnect) isAction()      {}
func (SubmitCredentials) isAction() {}
func (AddTransaction) isAction()    {}
func (SetField) isAction()          {}

// Apply dispatches a to its transition. A rejected action returns s unchanged.
func Apply(s State, a Action, ids IDGenerator) (State, Result) {
	switch act := a.(type) {
	case BeginConnect:
		return Begin(s)
	case SubmitCredentials:
		return Submit(s)
	case AddTransaction:
		return Add(s, ids)
	case SetField:
		return Set(s, act.Field, act.Value)
	default:
		return s, fail(ReasonInvalidPhase)
	}
}

// Begin opens the credential form.
func Begin(s State) (State, Result) {
	if s.Session.Phase != PhaseDisconnected {
		return s, fail(ReasonInvalidPhase)
	}
	s.Session.Phase = PhaseEnteringCredentials
	return s, ok()
}

// Set replaces one form buffer. Credential buffers are editable only while
// the credential form is open, transaction buffers only once connected.
func Set(s State, f Field, v string) (State, Result) {
	switch f {
	case FieldUserName, FieldPassword:
		if s.Session.Phase != PhaseEnteringCredentials {
			return s, fail(ReasonInvalidPhase)
		}
	case FieldAmount, FieldDescription:
		if !s.Connected() {
			return s, fail(ReasonNotConnected)
		}
	default:
		return s, fail(ReasonInvalidPhase)
	}
	switch f {
	case FieldUserName:
		s.Forms.UserName = v
	case FieldPassword:
		s.Forms.Password = v
	case FieldAmount:
		s.Forms.Amount = v
	case FieldDescription:
		s.Forms.Description = v
	}
	return s, ok()
}

// Submit checks the credential buffers and connects the mock account.
func Submit(s State) (State, Result) {
	if s.Session.Phase != PhaseEnteringCredentials {
		return s, fail(ReasonInvalidPhase)
	}
	if s.Forms.UserName == "" || s.Forms.Password == "" {
		return s, fail(ReasonMissingCredentials)
	}
	s.Session = Session{Phase: PhaseConnected, UserName: s.Forms.UserName}
	s.Forms.UserName, s.Forms.Password = "", ""
	return s, ok()
}

// Add appends the transaction described by the amount and description
// buffers and debits its amount from the balance. There is no floor check.
func Add(s State, ids IDGenerator) (State, Result) {
	if !s.Connected() {
		return s, fail(ReasonNotConnected)
	}
	if s.Forms.Amount == "" || s.Forms.Description == "" {
		return s, fail(ReasonMissingTransactionFields)
	}
	amount, err := ParseAmount(s.Forms.Amount)
	if err != nil {
		return s, Result{Reason: ReasonInvalidAmount, Detail: s.Forms.Amount}
	}
	tx := Transaction{ID: ids.NextID(), Amount: amount, Description: s.Forms.Description}
	s.Transactions = append(slices.Clip(s.Transactions), tx)
	s.Balance = s.Balance.Sub(amount)
	s.Forms.Amount, s.Forms.Description = "", ""
	return s, ok()
}

// maxAmount bounds a single transaction so the balance arithmetic stays cheap.
var maxAmount = decimal.New(1, 12)

// ParseAmount reads a signed decimal with at most two significant decimal
// places. A comma is accepted as the decimal separator when no dot is present
// ("150,50"). Exponent notation is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if strings.ContainsAny(v, "eE") {
		return decimal.Zero, fmt.Errorf("%w: exponent notation in %q", ErrInvalidAmount, raw)
	}
	if !strings.Contains(v, ".") && strings.Count(v, ",") == 1 {
		v = strings.Replace(v, ",", ".", 1)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q exceeds %s", ErrInvalidAmount, raw, maxAmount)
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, raw)
	}
	return d, nil
}
