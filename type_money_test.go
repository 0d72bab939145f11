package constituents

import "testing"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected string // Cell form
		err      bool
	}{
		{"59127100", "59127100", false},
		{"$59,127,100", "59127100", false},
		{"$1,234.56", "1234.56", false},
		{" $42 ", "42", false},
		{"", "", true},
		{"n/a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input, "USD")
			if (err != nil) != tt.err {
				t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got.Cell() != tt.expected {
				t.Errorf("ParseMoney(%q).Cell() = %q, want %q", tt.input, got.Cell(), tt.expected)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	m, err := ParseMoney("59127100", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.String(); got != "$59,127,100.00" {
		t.Errorf("Money.String() = %q, want %q", got, "$59,127,100.00")
	}
}

func TestMoneyAdd(t *testing.T) {
	a, _ := ParseMoney("100", "USD")
	b, _ := ParseMoney("23.50", "USD")
	if got := a.Add(b).Cell(); got != "123.5" {
		t.Errorf("Money.Add() = %q, want %q", got, "123.5")
	}

	// the zero Money is a weak operand: it takes the currency of the other.
	var zero Money
	sum := zero.Add(a)
	if sum.Currency() != "USD" || sum.Cell() != "100" {
		t.Errorf("zero.Add(a) = %s %s, want 100 USD", sum.Cell(), sum.Currency())
	}
}
