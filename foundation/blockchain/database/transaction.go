package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount is malformed, negative or
// outside the supported precision.
var ErrInvalidAmount = errors.New("invalid amount")

// Bounds on the representation of an amount. Comparing and hashing decimals
// costs time proportional to the exponent, so amounts are kept small.
const (
	minAmountExponent = -18
	maxAmountExponent = 18
	maxAmountDigits   = 40
)

// =============================================================================

// Tx is the transactional information between two parties. A transaction is
// immutable once created.
type Tx struct {
	Sender    AccountID       `json:"sender"`    // Account being debited, MINER for rewards.
	Recipient AccountID       `json:"recipient"` // Account being credited.
	Amount    decimal.Decimal `json:"amount"`    // Value moved between the two accounts.
	TimeStamp uint64          `json:"timestamp"` // Unix milliseconds the transaction was admitted.
}

// NewTx constructs a new transaction stamped with the specified time.
func NewTx(sender AccountID, recipient AccountID, amount decimal.Decimal, now time.Time) (Tx, error) {
	if !sender.IsAccountID() {
		return Tx{}, fmt.Errorf("%w: sender %q", ErrInvalidAccount, sender)
	}

	if !recipient.IsAccountID() {
		return Tx{}, fmt.Errorf("%w: recipient %q", ErrInvalidAccount, recipient)
	}

	if err := validateAmount(amount); err != nil {
		return Tx{}, err
	}

	tx := Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		TimeStamp: uint64(now.UnixMilli()),
	}

	return tx, nil
}

// IsReward tests if the transaction was issued by the system.
func (tx Tx) IsReward() bool {
	return tx.Sender.IsMiner()
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s->%s:%s", tx.Sender, tx.Recipient, tx.Amount)
}

// =============================================================================

// ParseAmount converts the string representation of an amount into a decimal
// and validates it is not negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if err := validateAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}

	return amount, nil
}

// validateAmount checks the amount is not negative and fits the supported
// exponent and digit range. Only the exponent and coefficient are inspected
// so an extreme value is rejected without being expanded.
func validateAmount(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent {
		return fmt.Errorf("%w: exponent %d out of range [%d, %d]", ErrInvalidAmount, exp, minAmountExponent, maxAmountExponent)
	}

	if n := amount.NumDigits(); n > maxAmountDigits {
		return fmt.Errorf("%w: %d digits exceeds %d", ErrInvalidAmount, n, maxAmountDigits)
	}

	if amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}

	return nil
}
