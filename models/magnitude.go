package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MagnitudeUnit is the display suffix for a social-metric magnitude.
type MagnitudeUnit string

const (
	UnitMillions  MagnitudeUnit = "M"
	UnitThousands MagnitudeUnit = "K"
)

// Magnitude is a social metric carried as a typed value instead of a
// suffixed string, so consumers never re-parse display text. Value is
// already scaled to the unit and rounded to one decimal.
type Magnitude struct {
	Value float64
	Unit  MagnitudeUnit
}

// Millions scales a raw count into an "M" magnitude.
func Millions(n float64) Magnitude {
	return Magnitude{Value: round1(n / 1_000_000), Unit: UnitMillions}
}

// Thousands scales a raw count into a "K" magnitude.
func Thousands(n float64) Magnitude {
	return Magnitude{Value: round1(n / 1_000), Unit: UnitThousands}
}

// Numeric returns the scaled value, 0 for the zero Magnitude.
func (m Magnitude) Numeric() float64 {
	return m.Value
}

// String renders the display form, e.g. "2.5M" or "1M" (trailing ".0"
// is stripped to match the established payload format).
func (m Magnitude) String() string {
	return formatScaled(m.Value) + string(m.Unit)
}

// MarshalJSON emits the display string so the wire shape stays identical
// to what clients already render.
func (m Magnitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON parses a display string back into a Magnitude. Anything
// unparseable degrades to the zero Magnitude rather than erroring.
func (m *Magnitude) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*m = Magnitude{}
		return nil
	}
	s = strings.TrimSpace(s)
	unit := MagnitudeUnit("")
	if strings.HasSuffix(s, string(UnitMillions)) {
		unit = UnitMillions
		s = strings.TrimSuffix(s, string(UnitMillions))
	} else if strings.HasSuffix(s, string(UnitThousands)) {
		unit = UnitThousands
		s = strings.TrimSuffix(s, string(UnitThousands))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*m = Magnitude{}
		return nil
	}
	*m = Magnitude{Value: round1(v), Unit: unit}
	return nil
}

// FormatMillions renders a raw count at millions scale without the unit
// suffix: FormatMillions(2_500_000) == "2.5", FormatMillions(1_000_000) == "1".
func FormatMillions(n float64) string {
	return formatScaled(round1(n / 1_000_000))
}

// FormatThousands renders a raw count at thousands scale without the unit
// suffix: FormatThousands(800) == "0.8".
func FormatThousands(n float64) string {
	return formatScaled(round1(n / 1_000))
}

func formatScaled(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
