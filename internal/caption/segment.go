package caption

// SegmentSize is the fixed number of tokens in a sealed phrase.
const SegmentSize = 10

// Segmenter groups an ordered token stream into fixed-size phrases.
type Segmenter struct {
	// KeepPartial emits a trailing phrase holding fewer than SegmentSize
	// tokens instead of discarding it. Off by default to match the
	// historical behavior, where remainder tokens are dropped.
	KeepPartial bool
}

// Segment consumes tokens in order and returns the sealed phrases. A phrase's
// start time is latched from the first word it contains; its end time tracks
// every word seen, so punctuation closing a phrase inherits the last word's
// timing. Every token, word or punctuation, counts toward the segment size.
func (s Segmenter) Segment(tokens []Token) []Phrase {
	var phrases []Phrase
	var phrase Phrase
	awaitingStart := true

	for _, tok := range tokens {
		if tok.Kind == Word {
			if awaitingStart {
				phrase.Start = tok.Start
				awaitingStart = false
			}
			phrase.End = tok.End
		}
		phrase.Tokens = append(phrase.Tokens, tok)

		if len(phrase.Tokens) == SegmentSize {
			phrases = append(phrases, phrase)
			phrase = Phrase{}
			awaitingStart = true
		}
	}

	if s.KeepPartial && len(phrase.Tokens) > 0 {
		phrases = append(phrases, phrase)
	}

	return phrases
}
