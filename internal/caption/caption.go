package caption

// kind of transcript token
type TokenKind int

const (
	Word TokenKind = iota
	Punctuation
)

// Token is one recognized unit from the transcription source. Punctuation
// carries no timing of its own; only Word tokens have Start and End set.
type Token struct {
	Kind  TokenKind
	Text  string
	Start float64 // seconds, Word only
	End   float64 // seconds, Word only
}

// Phrase is a fixed-size group of transcript tokens shown as one caption.
// Start is the time of the first word in the phrase; End tracks the latest
// word seen, so a phrase closing on punctuation keeps the last word's time.
type Phrase struct {
	Start  float64
	End    float64
	Tokens []Token
}

// interface for serializing phrases into a caption document
type Emitter interface {
	Emit(phrases []Phrase) (string, error)
}
