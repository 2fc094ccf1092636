package transcribe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rdachowski/subweave/internal/caption"
)

// item type discriminators used by the transcription service
const (
	itemPronunciation = "pronunciation"
	itemPunctuation   = "punctuation"
)

var ErrMalformedTranscript = errors.New("malformed transcript")

// Item is one recognized unit in the transcription job output. Timing fields
// are decimal-second strings and are present only on pronunciation items.
type Item struct {
	Type         string        `json:"type"`
	StartTime    string        `json:"start_time,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// candidate content for an item; the first entry is the service's best guess
type Alternative struct {
	Content string `json:"content"`
}

// Document is the transcription job output consumed by the caption pipeline.
type Document struct {
	Results struct {
		Items []Item `json:"items"`
	} `json:"results"`
}

// Decode reads a transcription JSON document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTranscript, err)
	}
	return &doc, nil
}

// DecodeBytes reads a transcription JSON document already held in memory.
func DecodeBytes(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Tokens converts the document's items into pipeline tokens, validating each
// item along the way. An empty item list yields no tokens and no error.
func (d *Document) Tokens() ([]caption.Token, error) {
	tokens := make([]caption.Token, 0, len(d.Results.Items))
	for i, item := range d.Results.Items {
		if len(item.Alternatives) == 0 || item.Alternatives[0].Content == "" {
			return nil, fmt.Errorf("%w: item %d has no content", ErrMalformedTranscript, i)
		}
		tok := caption.Token{Text: item.Alternatives[0].Content}

		switch item.Type {
		case itemPronunciation:
			tok.Kind = caption.Word
			start, err := strconv.ParseFloat(item.StartTime, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: item %d has start_time %q", ErrMalformedTranscript, i, item.StartTime)
			}
			end, err := strconv.ParseFloat(item.EndTime, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: item %d has end_time %q", ErrMalformedTranscript, i, item.EndTime)
			}
			tok.Start = start
			tok.End = end
		case itemPunctuation:
			tok.Kind = caption.Punctuation
		default:
			return nil, fmt.Errorf("%w: item %d has unknown type %q", ErrMalformedTranscript, i, item.Type)
		}

		tokens = append(tokens, tok)
	}
	return tokens, nil
}
