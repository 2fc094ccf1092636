package caption

import (
	"fmt"
	"strings"
)

// SubRip format
type SRTEmitter struct{}

// serializes phrases as numbered SRT cues
func (e SRTEmitter) Emit(phrases []Phrase) (string, error) {
	var sb strings.Builder
	for i, p := range phrases {
		// cue index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// time range: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimeCode(p.Start, StyleSRT),
			FormatTimeCode(p.End, StyleSRT)))

		sb.WriteString(RenderText(p))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
