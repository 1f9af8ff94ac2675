package entities

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("price must be a number with at most 2 decimal places")

// Price is a fixed-point amount stored as cents so values like 18.00
// survive the round trip through JSON and numeric(5,2) exactly.
type Price int64

// ParsePrice accepts "18", "18.5" or "18.00". More than two fraction
// digits, negative amounts and values outside numeric(5,2) are rejected.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidPrice
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, ErrInvalidPrice
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return 0, ErrInvalidPrice
		}
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	var f int64
	if frac != "00" {
		if f, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return 0, ErrInvalidPrice
		}
	}

	p := Price(w*100 + f)
	if p >= 100000 {
		return 0, ErrInvalidPrice
	}
	return p, nil
}

func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *Price) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = 0
		return nil
	case []byte:
		parsed, err := ParsePrice(string(v))
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case string:
		parsed, err := ParsePrice(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case float64:
		*p = Price(v*100 + 0.5)
		return nil
	case int64:
		*p = Price(v * 100)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}
}
