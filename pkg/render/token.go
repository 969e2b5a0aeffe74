package render

// Token is one display slot of the formatted time string: a digit value,
// the separator, or a blank left by the flashing separator.
type Token int

const (
	Absent    Token = -1
	Separator Token = 10
)

func (t Token) IsDigit() bool {
	return t >= 0 && t <= 9
}

// Tokenize maps the formatted time string to display tokens. The colon
// becomes a Separator only while visible and backed by a glyph; otherwise
// it becomes Absent, which renders nothing and reserves no width.
func Tokenize(timeStr string, separatorVisible, hasSeparatorGlyph bool) []Token {
	var tokens []Token
	for _, c := range timeStr {
		switch {
		case c == ':':
			if separatorVisible && hasSeparatorGlyph {
				tokens = append(tokens, Separator)
			} else {
				tokens = append(tokens, Absent)
			}
		case c >= '0' && c <= '9':
			tokens = append(tokens, Token(c-'0'))
		}
	}
	return tokens
}

// HasDigits reports whether anything renderable is present.
func HasDigits(tokens []Token) bool {
	for _, t := range tokens {
		if t != Absent {
			return true
		}
	}
	return false
}
