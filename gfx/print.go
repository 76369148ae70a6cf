package gfx

import (
	"math"
	"strconv"
)

// Kind tags the payload of a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindChar
)

// DefaultPrecision is the number of decimals FloatDefault prints.
const DefaultPrecision = 2

const maxPrecision = 17

// maxNumberText is the longest rendering AppendText can produce for a
// number: a sign, the 309 integer digits of math.MaxFloat64, the point and
// maxPrecision decimals.
const maxNumberText = 1 + 309 + 1 + maxPrecision

// Value is something the console can print: text, an integer, a float with
// a fixed number of decimals, a boolean or a single character.
type Value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	f    float64
	prec int
	b    bool
	c    byte
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Str wraps text.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Int wraps a signed integer, printed in decimal.
func Int[T signed](v T) Value { return Value{kind: KindInt, i: int64(v)} }

// Uint wraps an unsigned integer, printed in decimal.
func Uint[T unsigned](v T) Value { return Value{kind: KindUint, u: uint64(v)} }

// Float wraps f, printed with exactly prec decimals. prec is clamped to 0-17.
func Float(f float64, prec int) Value {
	if prec < 0 {
		prec = 0
	}
	if prec > maxPrecision {
		prec = maxPrecision
	}
	return Value{kind: KindFloat, f: f, prec: prec}
}

// FloatDefault wraps f with DefaultPrecision decimals.
func FloatDefault(f float64) Value { return Float(f, DefaultPrecision) }

// Bool wraps b, printed as "true" or "false".
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Char wraps one byte. '\n' and '\r' keep their control meaning.
func Char(c byte) Value { return Value{kind: KindChar, c: c} }

// Kind returns the payload tag.
func (v Value) Kind() Kind { return v.kind }

// AppendText appends the textual form of v to dst.
func (v Value) AppendText(dst []byte) []byte {
	switch v.kind {
	case KindString:
		return append(dst, v.s...)
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindUint:
		return strconv.AppendUint(dst, v.u, 10)
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return append(dst, "nan"...)
		case math.IsInf(v.f, 1):
			return append(dst, "inf"...)
		case math.IsInf(v.f, -1):
			return append(dst, "-inf"...)
		}
		return strconv.AppendFloat(dst, v.f, 'f', v.prec, 64)
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindChar:
		return append(dst, v.c)
	}
	return dst
}

func (v Value) String() string { return string(v.AppendText(nil)) }

// Print streams each value through the console at the cursor.
//
// '\n' starts a new line, '\r' returns to the text area's left edge, ASCII
// bytes are drawn and advance the cursor, and bytes above 127 are dropped.
// Numbers are formatted into a bounded scratch buffer; renderings longer than
// its capacity are cut to the leading bytes.
func (e *Engine) Print(vals ...Value) {
	for _, v := range vals {
		e.print(v)
	}
}

// Println is Print followed by a newline. With no values it only starts a
// new line.
func (e *Engine) Println(vals ...Value) {
	e.Print(vals...)
	e.putByte('\n')
}

// PrintString is Print(Str(s)).
func (e *Engine) PrintString(s string) { e.print(Str(s)) }

// PrintlnString is Println(Str(s)).
func (e *Engine) PrintlnString(s string) { e.Println(Str(s)) }

func (e *Engine) print(v Value) {
	switch v.kind {
	case KindString:
		for i := 0; i < len(v.s); i++ {
			e.putByte(v.s[i])
		}
	case KindChar:
		e.putByte(v.c)
	default:
		for _, b := range e.formatNumber(v) {
			e.putByte(b)
		}
	}
}

// formatNumber renders v into the engine's scratch buffer, truncated to its
// capacity.
func (e *Engine) formatNumber(v Value) []byte {
	out := v.AppendText(e.numText[:0])
	if len(out) > e.numCap {
		out = out[:e.numCap]
	}
	return out
}

// Write streams p through the console like Print(Str(string(p))). It always
// reports len(p) bytes written and a nil error.
func (e *Engine) Write(p []byte) (int, error) {
	for _, b := range p {
		e.putByte(b)
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (e *Engine) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		e.putByte(s[i])
	}
	return len(s), nil
}

// WriteByte streams one byte through the console.
func (e *Engine) WriteByte(b byte) error {
	e.putByte(b)
	return nil
}
