package solver

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field identifies one of the three observations of the triangle.
type Field int

const (
	// NoField marks a recomputation that was not caused by a field edit,
	// e.g. a lock mode change.
	NoField Field = iota
	Angle
	Height
	Distance
)

var fieldNames = map[Field]string{
	NoField:  "none",
	Angle:    "angle",
	Height:   "height",
	Distance: "distance",
}

// Fields returns the three observation fields in display order.
func Fields() []Field {
	return []Field{Angle, Height, Distance}
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Unit returns the display unit of the field.
func (f Field) Unit() string {
	switch f {
	case Angle:
		return "°"
	case Height, Distance:
		return "m"
	}
	return ""
}

// ParseField maps a field name to its Field. The empty string and "none"
// both map to NoField.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoField, nil
	case "angle", "a":
		return Angle, nil
	case "height", "h":
		return Height, nil
	case "distance", "d":
		return Distance, nil
	}
	return NoField, fmt.Errorf("unknown field %q", name)
}

// Value is a parsed observation: either a finite number or absent.
type Value struct {
	number float64
	valid  bool
}

// Some wraps a number. Non-finite numbers are absent.
func Some(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{number: v, valid: true}
}

// None returns the absent value.
func None() Value {
	return Value{}
}

// Valid reports whether the value holds a number.
func (v Value) Valid() bool {
	return v.valid
}

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.number, v.valid
}

func (v Value) String() string {
	if !v.valid {
		return "<absent>"
	}
	return FormatValue(v.number)
}

var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseValue reads the leading decimal number of text. Surrounding
// whitespace and trailing garbage are ignored ("12m" is 12). Empty or
// non-numeric text, and anything that does not parse to a finite number,
// is absent.
func ParseValue(text string) Value {
	prefix := numericPrefix.FindString(strings.TrimSpace(text))
	if prefix == "" {
		return None()
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range exponents land here.
		return None()
	}
	return Some(n)
}

// FormatValue renders n with two decimals. Non-finite numbers render empty.
func FormatValue(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	return strconv.FormatFloat(n, 'f', 2, 64)
}

// Observations is the current state of the three fields.
type Observations struct {
	Angle    Value
	Height   Value
	Distance Value
}

// Get returns the value of f. NoField yields an absent value.
func (o Observations) Get(f Field) Value {
	switch f {
	case Angle:
		return o.Angle
	case Height:
		return o.Height
	case Distance:
		return o.Distance
	}
	return None()
}

// With returns a copy of o with f set to v.
func (o Observations) With(f Field, v Value) Observations {
	switch f {
	case Angle:
		o.Angle = v
	case Height:
		o.Height = v
	case Distance:
		o.Distance = v
	}
	return o
}

// ValidCount reports how many of the three fields hold a number.
func (o Observations) ValidCount() int {
	n := 0
	for _, f := range Fields() {
		if o.Get(f).Valid() {
			n++
		}
	}
	return n
}

// ReadObservations collects the three fields from src.
func ReadObservations(src ValueSource) Observations {
	return Observations{
		Angle:    src.Read(Angle),
		Height:   src.Read(Height),
		Distance: src.Read(Distance),
	}
}
