// Package css defines the typed value and rule model consumed by the
// cascade, plus a parser that turns stylesheet text into that model.
package css

import "fmt"

type Unit int

const (
	Px Unit = iota
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return "?"
}

type ValueKind int

const (
	KindKeyword ValueKind = iota
	KindLength
	KindColor
)

// Value is one resolved CSS value: a keyword, a length, or a color.
type Value struct {
	Kind    ValueKind
	Keyword string
	Length  float64
	Unit    Unit
	Color   Color
}

func Keyword(kw string) Value {
	return Value{Kind: KindKeyword, Keyword: kw}
}

func Length(px float64) Value {
	return Value{Kind: KindLength, Length: px, Unit: Px}
}

func ColorValue(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// ZeroLength is the default for absent margin/border/padding properties.
var ZeroLength = Length(0)

// Auto is the initial value of `width`.
var Auto = Keyword("auto")

// ToPx returns the value in device pixels. Keywords and colors have no
// length and count as 0, which is what the width sum in layout needs for
// `auto` terms.
func (v Value) ToPx() float64 {
	if v.Kind == KindLength {
		return v.Length
	}
	return 0
}

func (v Value) IsAuto() bool {
	return v.Kind == KindKeyword && v.Keyword == "auto"
}

func (v Value) String() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindLength:
		return fmt.Sprintf("%g%s", v.Length, v.Unit)
	case KindColor:
		return v.Color.String()
	}
	return "<invalid>"
}
