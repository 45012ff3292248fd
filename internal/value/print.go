package value

import (
	"strconv"
	"strings"
)

// Sprint renders v the way the REPL and `print` built-in do: numbers
// as general-precision doubles with trailing zeros stripped, symbols
// as raw text, strings double-quoted with escapes re-applied, errors
// as "Error: <msg>", lists bracketed, and functions as either
// "<builtin>" or "(\\ <formals> <body>)".
func Sprint(v Value) string {
	switch x := v.(type) {
	case Num:
		return strconv.FormatFloat(x.N, 'g', -1, 64)

	case Sym:
		return x.Name

	case Str:
		return `"` + Escape(x.S) + `"`

	case Err:
		return "Error: " + x.Msg

	case SExpr:
		return sprintSeq(x.Elems, '(', ')')

	case QExpr:
		return sprintSeq(x.Elems, '{', '}')

	case Fun:
		if x.IsBuiltin() {
			return "<builtin>"
		}
		return "(\\ " + Sprint(x.Formals) + " " + Sprint(x.Body) + ")"

	default:
		return ""
	}
}

func sprintSeq(elems []Value, open, close byte) string {
	var b strings.Builder
	b.WriteByte(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Sprint(e))
	}
	b.WriteByte(close)
	return b.String()
}

// Escape encodes a raw Go string into the language's backslash escape
// form: backslash, double quote, newline, and tab are escaped. This
// is the exact inverse of Unescape, so Sprint(Str)/Unescape round-trip.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape decodes the backslash-escaped contents of a string literal
// (without its surrounding quotes) back into a raw Go string. Unknown
// escapes pass the escaped character through literally.
func Unescape(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i == len(runes)-1 {
			b.WriteRune(r)
			continue
		}
		i++
		switch runes[i] {
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
