package memacs

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// VisualEncode renders s with every whitespace, backslash, and control
// character escaped, the visual encoding the teacher used for history file
// entries (vis.go). ringfile.go uses this full form so that embedded
// newlines and leading/trailing spaces in a kill/delete/search ring entry
// survive a round trip through a one-line-per-entry text file.
func VisualEncode(s string) string { return visualEncode(s, true) }

// VisualizeControls escapes only backslash and non-space control characters,
// leaving ordinary whitespace untouched. window.go's RenderLine runs a
// line's text through this before truncation so a buffer holding raw
// control bytes (e.g. from a binary file opened by mistake) redraws as
// printable escapes instead of corrupting the terminal; tabs never reach it
// since RenderLine expands them to spaces first.
func VisualizeControls(s string) string { return visualEncode(s, false) }

func visualEncode(s string, escapeSpace bool) string {
	var buf strings.Builder
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch {
		case r == '\\':
			fmt.Fprintf(&buf, "\\%03o", int(r))
		case escapeSpace && unicode.IsSpace(r):
			fmt.Fprintf(&buf, "\\%03o", int(r))
		case unicode.IsControl(r):
			buf.WriteByte('\\')
			buf.WriteByte('^')
			buf.WriteRune(r + 0x40)
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// VisualDecode reverses VisualEncode. It does not handle the "%<hex>",
// "&<amp>", or "=<mime>" escape forms, which VisualEncode never produces.
func VisualDecode(s string) (string, error) {
	var buf strings.Builder

	for len(s) > 0 {
		meta := byte(0)
		t, ch := s, s[0]
		s = s[1:]

		switch ch {
		case '\\':
			if len(s) == 0 {
				return "", fmt.Errorf("invalid visual escape")
			}
			ch, s = s[0], s[1:]
			switch ch {
			case '0', '1', '2', '3', '4', '5', '6', '7', 'x', '\\', 'a', 'b', 'f', 'n', 'r', 't', 'v':
				r, _, rem, err := strconv.UnquoteChar(t, 0)
				if err != nil {
					return "", err
				}
				buf.WriteRune(r)
				s = rem
			case 'M':
				if len(s) == 0 {
					return "", fmt.Errorf("invalid visual escape: truncated meta")
				}
				meta = 0200
				ch, s = s[0], s[1:]
				switch ch {
				case '-':
					if len(s) == 0 {
						return "", fmt.Errorf("invalid visual escape: truncated meta")
					}
					ch, s = s[0], s[1:]
					buf.WriteByte(ch | meta)
					continue
				case '^':
					// fall through to Control handling below
				default:
					return "", fmt.Errorf("invalid visual escape: malformed meta")
				}
				fallthrough
			case '^':
				if len(s) == 0 {
					return "", fmt.Errorf("invalid visual escape: truncated control")
				}
				ch, s = s[0], s[1:]
				switch ch {
				case '?':
					buf.WriteByte(0177 | meta)
				default:
					buf.WriteByte((ch & 037) | meta)
				}
			case 's':
				buf.WriteByte(' ')
			case 'E':
				buf.WriteByte('\x1b')
			case '\n', '$':
				// hidden continuation marker, skip
			default:
				return "", fmt.Errorf("invalid visual escape %q", ch)
			}

		default:
			r, size := utf8.DecodeRuneInString(t)
			buf.WriteRune(r)
			s = t[size:]
		}
	}

	return buf.String(), nil
}
