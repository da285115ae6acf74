package kakeibo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned when parsing an amount below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountOverflow is returned for amounts, or sums of amounts, above MaxAmount.
	ErrAmountOverflow = errors.New("amount overflow")
)

// MaxAmount is the largest amount a ledger can hold, in minor units.
const MaxAmount = math.MaxInt64

var maxAmount = decimal.NewFromInt(MaxAmount)

// Currency controls how amounts are parsed from and printed for the user.
//
// Amounts are always stored as unsigned integers in the currency minor unit.
// The zero value is the plain mode: no symbol, no fraction digits.
type Currency struct {
	code string
}

// ParseCurrency returns the Currency for an ISO 4217 code. The empty code is the plain mode.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Currency{}, nil
	}
	if money.GetCurrency(code) == nil {
		return Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return Currency{code: code}, nil
}

// Code returns the ISO code, or "" in plain mode.
func (c Currency) Code() string { return c.code }

// fraction returns the number of digits of the minor unit.
func (c Currency) fraction() int {
	if c.code == "" {
		return 0
	}
	return money.GetCurrency(c.code).Fraction
}

// ParseAmount parses a user amount expressed in major units, like "3.50" in EUR,
// and returns it in minor units (350).
func (c Currency) ParseAmount(s string) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrNegativeAmount)
	}
	minor := d.Shift(int32(c.fraction()))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: at most %d decimal places allowed", s, c.fraction())
	}
	if minor.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrAmountOverflow)
	}
	return uint64(minor.IntPart()), nil
}

// Format returns the amount, given in minor units, as a display string.
// Amounts above MaxAmount have no currency rendering and print as "overflow".
func (c Currency) Format(amount uint64) string {
	if c.code == "" {
		return strconv.FormatUint(amount, 10)
	}
	if amount > MaxAmount {
		return "overflow"
	}
	return money.New(int64(amount), c.code).Display()
}

// Total returns the sum of the items amounts.
// It fails with ErrAmountOverflow when the sum exceeds MaxAmount.
func Total(items []Item) (uint64, error) {
	var sum uint64
	for _, it := range items {
		if it.Amount > MaxAmount-sum {
			return 0, fmt.Errorf("%w: total of %d items", ErrAmountOverflow, len(items))
		}
		sum += it.Amount
	}
	return sum, nil
}
