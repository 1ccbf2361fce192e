package fixpoint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/jackc/pgtype"
)

// Decimal is a fixed-point decimal number matching postgres numeric(10, 5):
// at most 10 significant digits, of which exactly 5 are fractional.
//
// It interchanges via JSON as a string with exactly 5 fractional digits
// ("0.80000", not 0.8), so values survive round-trips without float drift.
type Decimal struct {
	units int64 // value scaled by 10^FracDigits
}

// FracDigits is the number of fractional digits a Decimal carries.
const FracDigits = 5

const (
	scale    = int64(100_000)       // 10^FracDigits
	maxUnits = int64(9_999_999_999) // 10 digits in total
)

var ErrOutOfRange = errors.New("decimal out of numeric(10, 5) range")

// FromUnits builds a Decimal from a value scaled by 10^FracDigits.
//
// FromUnits(80000) == "0.80000" .
func FromUnits(units int64) (Decimal, error) {
	if units < -maxUnits || maxUnits < units {
		return Decimal{}, ErrOutOfRange
	}
	return Decimal{units: units}, nil
}

// Parse reads a decimal expression like "0.8", "-12.345" or "10".
//
// Expressions with more than FracDigits fractional digits or more than
// 10 significant digits in total are rejected.
func Parse(s string) (Decimal, error) {
	rest := s
	neg := false
	switch {
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	intpart, fracpart, _ := strings.Cut(rest, ".")
	if intpart == "" && fracpart == "" {
		return Decimal{}, fmt.Errorf("not a decimal: %q", s)
	}
	if len(fracpart) > FracDigits {
		return Decimal{}, fmt.Errorf(
			"%w: %q has more than %d fractional digits", ErrOutOfRange, s, FracDigits,
		)
	}

	units := int64(0)
	for _, d := range intpart {
		if d < '0' || '9' < d {
			return Decimal{}, fmt.Errorf("not a decimal: %q", s)
		}
		units = units*10 + int64(d-'0')
		if maxUnits/scale < units {
			return Decimal{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
	}
	units *= scale

	f := int64(0)
	for _, d := range fracpart {
		if d < '0' || '9' < d {
			return Decimal{}, fmt.Errorf("not a decimal: %q", s)
		}
		f = f*10 + int64(d-'0')
	}
	for i := len(fracpart); i < FracDigits; i++ {
		f *= 10
	}
	units += f

	if maxUnits < units {
		return Decimal{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	if neg {
		units = -units
	}
	return Decimal{units: units}, nil
}

// FromNumeric converts a scanned postgres numeric value.
//
// Values which do not fit numeric(10, 5) cause error.
func FromNumeric(n pgtype.Numeric) (Decimal, error) {
	if n.Status != pgtype.Present {
		return Decimal{}, errors.New("numeric is not present")
	}
	if n.NaN {
		return Decimal{}, errors.New("numeric is NaN")
	}

	i := new(big.Int).Set(n.Int)
	e := int64(n.Exp) + FracDigits
	switch {
	case 0 < e:
		i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil))
	case e < 0:
		r := new(big.Int)
		i.QuoRem(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(-e), nil), r)
		if r.Sign() != 0 {
			return Decimal{}, fmt.Errorf(
				"%w: more than %d fractional digits", ErrOutOfRange, FracDigits,
			)
		}
	}

	if !i.IsInt64() {
		return Decimal{}, ErrOutOfRange
	}
	return FromUnits(i.Int64())
}

// Units is the value scaled by 10^FracDigits.
func (d Decimal) Units() int64 {
	return d.units
}

func (d Decimal) Equal(other Decimal) bool {
	return d.units == other.units
}

// String renders the value with exactly FracDigits fractional digits.
func (d Decimal) String() string {
	u := d.units
	sign := ""
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%05d", sign, u/scale, u%scale)
}

// implement encoding/json.Marshaller
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// implement encoding/json.Unmarshaller
//
// Both of JSON number (0.8) and string ("0.8") tokens are accepted.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && 2 <= len(s) {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
