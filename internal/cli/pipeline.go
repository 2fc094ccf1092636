package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdachowski/subweave/internal/caption"
	"github.com/rdachowski/subweave/internal/transcribe"
)

// loadPhrases reads a transcription JSON file and segments it into phrases.
func loadPhrases(path string) ([]caption.Phrase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	doc, err := transcribe.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	tokens, err := doc.Tokens()
	if err != nil {
		return nil, err
	}

	return caption.Segmenter{}.Segment(tokens), nil
}

// emitArtifact serializes phrases with the given emitter and writes the
// resulting document to disk.
func emitArtifact(e caption.Emitter, phrases []caption.Phrase, path string) error {
	doc, err := e.Emit(phrases)
	if err != nil {
		return err
	}
	return writeArtifact(path, doc)
}

// writeArtifact writes a rendered caption document to disk.
func writeArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// defaultOutputPath swaps the input file's extension for the target one.
func defaultOutputPath(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}
