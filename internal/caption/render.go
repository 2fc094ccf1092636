package caption

import "strings"

// RenderText joins a phrase's tokens into a single display string. A
// separating space goes before tokens that start with an ASCII letter or
// digit; anything else is treated as punctuation and hugs the preceding
// word, reconstructing natural spacing from a stream with no whitespace.
func RenderText(p Phrase) string {
	var sb strings.Builder
	for i, tok := range p.Tokens {
		if i > 0 && startsAlphanumeric(tok.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func startsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
