package cli

import (
	"fmt"
	"os"

	"github.com/rdachowski/subweave/internal/caption"
	"github.com/spf13/cobra"
)

var srtCmd = &cobra.Command{
	Use:   "srt [transcript.json]",
	Short: "Create an SRT subtitle file from a transcription",
	Long: `Create an SRT subtitle file from the JSON output of a speech
transcription job.

The transcript's word and punctuation items are grouped into fixed-size
phrases, each becoming one numbered subtitle cue with its start and end time.

Examples:
  subweave srt transcript.json
  subweave srt transcript.json -o captions.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runSRT,
}

func init() {
	rootCmd.AddCommand(srtCmd)
}

func runSRT(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, ".srt")
	}

	logger.Infow("Creating SRT from transcript",
		"input", inputPath,
		"output", outputPath,
	)

	phrases, err := loadPhrases(inputPath)
	if err != nil {
		return err
	}
	logger.Debugw("Segmented transcript", "phrases", len(phrases))

	if err := emitArtifact(caption.SRTEmitter{}, phrases, outputPath); err != nil {
		return err
	}

	logger.Infow("Wrote SRT file",
		"cues", len(phrases),
		"path", outputPath,
	)
	return nil
}
