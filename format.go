package linalg

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders values as debug strings such as "vec3<1, 2, 3>" using the
// number format of a locale. It is a diagnostic aid: there is no parser for it.
type Formatter struct {
	printer   *message.Printer
	separator string
	precision int
}

// FormatOption configures a Formatter.
type FormatOption func(*Formatter)

// WithPrecision fixes the count of fractional digits.
// A negative value prints the shortest representation (the default).
func WithPrecision(digits int) FormatOption {
	return func(f *Formatter) {
		f.precision = digits
	}
}

// WithSeparator overrides the separator placed between components.
func WithSeparator(sep string) FormatOption {
	return func(f *Formatter) {
		f.separator = sep
	}
}

// NewFormatter returns a Formatter for the given locale. Components are separated
// by the locale's digit-group separator, "," when the locale has none.
func NewFormatter(tag language.Tag, opts ...FormatOption) *Formatter {
	p := message.NewPrinter(tag)
	f := &Formatter{
		printer:   p,
		separator: groupSeparator(p),
		precision: -1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = NewFormatter(language.English)

// groupSeparator finds the separator the printer inserts between digit groups.
func groupSeparator(p *message.Printer) string {
	s := p.Sprintf("%d", 1000)
	sep := strings.TrimFunc(strings.TrimPrefix(s, "1"), func(r rune) bool {
		return r == '0'
	})
	if sep == "" || strings.IndexFunc(sep, unicode.IsDigit) >= 0 {
		return ","
	}
	return sep
}

// Number formats a single value in positional notation, never scientific. Without
// a precision it uses the fewest fractional digits that round-trip v.
func (f *Formatter) Number(v float64) string {
	digits := f.precision
	if digits < 0 {
		digits = fractionDigits(v)
	}
	return f.printer.Sprintf("%."+strconv.Itoa(digits)+"f", v)
}

// fractionDigits counts the fractional digits of the shortest decimal form of v.
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func (f *Formatter) join(tag string, parts ...string) string {
	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte('<')
	for i, p := range parts {
		if i > 0 {
			b.WriteString(f.separator)
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	b.WriteByte('>')
	return b.String()
}

// Tagged renders numbers followed by extra pre-formatted fields as tag<…>.
func (f *Formatter) Tagged(tag string, values []float64, fields ...string) string {
	parts := make([]string, 0, len(values)+len(fields))
	for _, v := range values {
		parts = append(parts, f.Number(v))
	}
	parts = append(parts, fields...)
	return f.join(tag, parts...)
}

func (f *Formatter) grid(tag string, values []float64, n int) string {
	var b strings.Builder
	b.WriteString(tag)
	b.WriteString("<\n")
	for row := 0; row < n; row++ {
		b.WriteString("    ")
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteString(f.separator)
				b.WriteByte(' ')
			}
			b.WriteString(f.Number(values[row*n+col]))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('>')
	return b.String()
}

// Vector3 renders v as vec3<x, y, z>.
func (f *Formatter) Vector3(v Vector3) string {
	return f.Tagged("vec3", []float64{v.X, v.Y, v.Z})
}

// Quaternion renders q as quat<x, y, z, w>.
func (f *Formatter) Quaternion(q Quaternion) string {
	return f.Tagged("quat", []float64{q.X, q.Y, q.Z, q.W})
}

// Euler renders e as eul<x, y, z, order>.
func (f *Formatter) Euler(e Euler) string {
	return f.Tagged("eul", []float64{e.X, e.Y, e.Z}, e.Order.String())
}

// Matrix3 prints the storage in order, one column of m per line.
func (f *Formatter) Matrix3(m Matrix3) string {
	return f.grid("mat3", m[:], 3)
}

// Matrix4 prints the storage in order, one column of m per line.
func (f *Formatter) Matrix4(m Matrix4) string {
	return f.grid("mat4", m[:], 4)
}

func (v Vector3) String() string    { return defaultFormatter.Vector3(v) }
func (q Quaternion) String() string { return defaultFormatter.Quaternion(q) }
func (e Euler) String() string      { return defaultFormatter.Euler(e) }
func (m Matrix3) String() string    { return defaultFormatter.Matrix3(m) }
func (m Matrix4) String() string    { return defaultFormatter.Matrix4(m) }

// DefaultFormatter returns the English formatter used by the String methods.
func DefaultFormatter() *Formatter {
	return defaultFormatter
}
