package cli

import (
	"fmt"
	"os"

	"github.com/rdachowski/subweave/internal/caption"
	"github.com/rdachowski/subweave/internal/config"
	"github.com/spf13/cobra"
)

var vttCmd = &cobra.Command{
	Use:   "vtt [transcript.json]",
	Short: "Create a WebVTT subtitle file from a transcription",
	Long: `Create a WebVTT subtitle file from the JSON output of a speech
transcription job.

The output starts with the WEBVTT header and contains one numbered cue per
phrase. An optional cue style can be appended to every time-range line to
position the subtitles on screen.

Examples:
  subweave vtt transcript.json
  subweave vtt transcript.json --cue-style "align:middle line:90%"`,
	Args: cobra.ExactArgs(1),
	RunE: runVTT,
}

func init() {
	rootCmd.AddCommand(vttCmd)

	vttCmd.Flags().
		String("cue-style", "", "Style suffix for cue time-range lines (e.g. \"align:middle line:90%\")")
}

func runVTT(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cueStyle := cfg.VTTCueStyle
	if cmd.Flags().Changed("cue-style") {
		cueStyle, _ = cmd.Flags().GetString("cue-style")
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, ".vtt")
	}

	logger.Infow("Creating VTT from transcript",
		"input", inputPath,
		"output", outputPath,
		"cue_style", cueStyle,
	)

	phrases, err := loadPhrases(inputPath)
	if err != nil {
		return err
	}
	logger.Debugw("Segmented transcript", "phrases", len(phrases))

	if err := emitArtifact(caption.VTTEmitter{CueStyle: cueStyle}, phrases, outputPath); err != nil {
		return err
	}

	logger.Infow("Wrote VTT file",
		"cues", len(phrases),
		"path", outputPath,
	)
	return nil
}
