package kakeibo

import (
	"errors"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		code    string
		want    string
		wantErr bool
	}{
		{code: "", want: ""},
		{code: "jpy", want: "JPY"},
		{code: " EUR ", want: "EUR"},
		{code: "XYZ", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			c, err := ParseCurrency(tc.code)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCurrency(%q) error = %v, wantErr %v", tc.code, err, tc.wantErr)
			}
			if err == nil && c.Code() != tc.want {
				t.Errorf("ParseCurrency(%q).Code() = %q, want %q", tc.code, c.Code(), tc.want)
			}
		})
	}
}

func TestCurrency_ParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		input    string
		want     uint64
		wantErr  bool
	}{
		{name: "plain integer", input: "350", want: 350},
		{name: "plain zero", input: "0", want: 0},
		{name: "plain trailing zeros", input: "350.00", want: 350},
		{name: "plain fraction", input: "3.5", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "coffee", wantErr: true},
		{name: "too large", input: "9223372036854775808", wantErr: true},
		{name: "yen", currency: "JPY", input: "350", want: 350},
		{name: "yen fraction", currency: "JPY", input: "350.5", wantErr: true},
		{name: "euro cents", currency: "EUR", input: "3.50", want: 350},
		{name: "euro integer", currency: "EUR", input: "12", want: 1200},
		{name: "euro sub cent", currency: "EUR", input: "0.001", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseCurrency(tc.currency)
			if err != nil {
				t.Fatalf("ParseCurrency(%q) error = %v", tc.currency, err)
			}
			got, err := c.ParseAmount(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestCurrency_ParseAmountNegative(t *testing.T) {
	_, err := Currency{}.ParseAmount("-10")
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("ParseAmount(-10) error = %v, want ErrNegativeAmount", err)
	}
}

func TestCurrency_Format(t *testing.T) {
	eur, _ := ParseCurrency("EUR")
	if got, want := (Currency{}).Format(350), "350"; got != want {
		t.Errorf("plain Format(350) = %q, want %q", got, want)
	}
	if got, want := eur.Format(350), "€3.50"; got != want {
		t.Errorf("EUR Format(350) = %q, want %q", got, want)
	}
}

func TestCurrency_FormatOverflow(t *testing.T) {
	eur, _ := ParseCurrency("EUR")
	if got, want := eur.Format(MaxAmount), "€92,233,720,368,547,758.07"; got != want {
		t.Errorf("EUR Format(MaxAmount) = %q, want %q", got, want)
	}
	if got, want := eur.Format(1<<63), "overflow"; got != want {
		t.Errorf("EUR Format(1<<63) = %q, want %q", got, want)
	}
}

func TestTotal(t *testing.T) {
	testCases := []struct {
		name    string
		amounts []uint64
		want    uint64
		wantErr bool
	}{
		{name: "empty", amounts: nil, want: 0},
		{name: "some", amounts: []uint64{350, 1200, 0}, want: 1550},
		{name: "max", amounts: []uint64{MaxAmount - 1, 1}, want: MaxAmount},
		{name: "over max", amounts: []uint64{MaxAmount, 1}, wantErr: true},
		{name: "wraps uint64", amounts: []uint64{MaxAmount, MaxAmount, 2}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var items []Item
			for _, a := range tc.amounts {
				items = append(items, Item{Amount: a})
			}
			got, err := Total(items)
			if tc.wantErr {
				if !errors.Is(err, ErrAmountOverflow) {
					t.Errorf("Total() error = %v, want ErrAmountOverflow", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Total() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Total() = %d, want %d", got, tc.want)
			}
		})
	}
}
