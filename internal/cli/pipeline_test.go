package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{"transcript.json", ".srt", "transcript.srt"},
		{"dir/transcript.json", ".vtt", "dir/transcript.vtt"},
		{"captions.srt", ".ssml", "captions.ssml"},
		{"noext", ".srt", "noext.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := defaultOutputPath(tt.input, tt.ext)
			if got != tt.want {
				t.Errorf(
					"defaultOutputPath(%q, %q) = %q, want %q",
					tt.input,
					tt.ext,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestLoadPhrases(t *testing.T) {
	content := `{"results":{"items":[
		{"type":"pronunciation","start_time":"0.0","end_time":"0.4","alternatives":[{"content":"one"}]},
		{"type":"pronunciation","start_time":"0.5","end_time":"0.9","alternatives":[{"content":"two"}]},
		{"type":"pronunciation","start_time":"1.0","end_time":"1.4","alternatives":[{"content":"three"}]},
		{"type":"pronunciation","start_time":"1.5","end_time":"1.9","alternatives":[{"content":"four"}]},
		{"type":"pronunciation","start_time":"2.0","end_time":"2.4","alternatives":[{"content":"five"}]},
		{"type":"pronunciation","start_time":"2.5","end_time":"2.9","alternatives":[{"content":"six"}]},
		{"type":"pronunciation","start_time":"3.0","end_time":"3.4","alternatives":[{"content":"seven"}]},
		{"type":"pronunciation","start_time":"3.5","end_time":"3.9","alternatives":[{"content":"eight"}]},
		{"type":"pronunciation","start_time":"4.0","end_time":"4.4","alternatives":[{"content":"nine"}]},
		{"type":"punctuation","alternatives":[{"content":"."}]}
	]}}`

	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write transcript: %v", err)
	}

	phrases, err := loadPhrases(path)
	if err != nil {
		t.Fatalf("loadPhrases failed: %v", err)
	}
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(phrases))
	}
	if phrases[0].Start != 0 || phrases[0].End != 4.4 {
		t.Errorf(
			"phrase timing = %v-%v, want 0-4.4",
			phrases[0].Start,
			phrases[0].End,
		)
	}
}

func TestLoadPhrasesMissingFile(t *testing.T) {
	if _, err := loadPhrases(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("loadPhrases succeeded, want error")
	}
}
