package envvalue

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// inspect renders s as a double-quoted literal the way error messages
// have always shown it: "\e" for escape, "\#{" for interpolation markers
// and "\uXXXX" for other non-printable runes.
func inspect(s string) string {
	sb := new(strings.Builder)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(sb, `\x%02X`, s[i])
			i++
			continue
		}
		i += size

		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\b':
			sb.WriteString(`\b`)
		case '\a':
			sb.WriteString(`\a`)
		case 0x1b:
			sb.WriteString(`\e`)
		case '#':
			if i < len(s) && (s[i] == '{' || s[i] == '$' || s[i] == '@') {
				sb.WriteByte('\\')
			}
			sb.WriteByte('#')
		default:
			switch {
			case unicode.IsGraphic(r):
				sb.WriteRune(r)
			case r > 0xFFFF:
				fmt.Fprintf(sb, `\u{%X}`, r)
			default:
				fmt.Fprintf(sb, `\u%04X`, r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// inspectList renders values as an array literal, e.g. ["1", "true"].
func inspectList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = inspect(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
