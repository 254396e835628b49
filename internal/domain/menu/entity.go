package menu

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FoodMenu is a meal option as the upstream backend serves it.
type FoodMenu struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

// Amount is a money value. The backend serializes prices inconsistently
// (sometimes a JSON number, sometimes a quoted string, occasionally null),
// so decoding tolerates all of them and treats garbage as zero rather than
// failing the whole payload. Rendering is always a 2-decimal string.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// AmountFromString parses a decimal string; invalid input yields zero.
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{decimal.Zero}
	}
	return Amount{d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.StringFixed(2))
}
