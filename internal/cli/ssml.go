package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdachowski/subweave/internal/caption"
	"github.com/rdachowski/subweave/internal/config"
	"github.com/spf13/cobra"
)

var ssmlCmd = &cobra.Command{
	Use:   "ssml [transcript.json|captions.srt]",
	Short: "Create an SSML file from a transcription or an SRT file",
	Long: `Create an SSML document whose prosody elements bound how long each
phrase may take to synthesize, pacing the generated speech against the
original timing.

The input may be either the JSON output of a speech transcription job or an
already-produced SRT file; an input with an .srt extension takes the SRT
path. The time pad factor scales every duration bound, so a factor of 1.2
gives the synthesizer 20% more time per phrase.

Examples:
  subweave ssml transcript.json
  subweave ssml captions.srt --time-pad 1.2`,
	Args: cobra.ExactArgs(1),
	RunE: runSSML,
}

func init() {
	rootCmd.AddCommand(ssmlCmd)

	ssmlCmd.Flags().
		Float64("time-pad", 1.0, "Multiplier applied to each phrase's duration bound")
}

func runSSML(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	timePad := cfg.TimePadFactor
	if cmd.Flags().Changed("time-pad") {
		timePad, _ = cmd.Flags().GetFloat64("time-pad")
	}

	emitter, err := caption.NewSSMLEmitter(timePad)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, ".ssml")
	}

	fromSRT := strings.EqualFold(filepath.Ext(inputPath), ".srt")

	logger.Infow("Creating SSML",
		"input", inputPath,
		"output", outputPath,
		"time_pad", timePad,
		"from_srt", fromSRT,
	)

	var doc string
	if fromSRT {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read SRT file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()

		lines, err := caption.ReprojectSRT(f)
		if err != nil {
			return err
		}
		logger.Debugw("Reprojected SRT cues", "cues", len(lines))

		doc, err = emitter.EmitLines(lines)
		if err != nil {
			return err
		}
	} else {
		phrases, err := loadPhrases(inputPath)
		if err != nil {
			return err
		}
		logger.Debugw("Segmented transcript", "phrases", len(phrases))

		doc, err = emitter.Emit(phrases)
		if err != nil {
			return err
		}
	}

	if err := writeArtifact(outputPath, doc); err != nil {
		return err
	}

	logger.Infow("Wrote SSML file", "path", outputPath)
	return nil
}
