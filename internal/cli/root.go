package cli

import (
	"github.com/rdachowski/subweave/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subweave",
	Short: "Convert speech transcriptions into SRT, WebVTT, and SSML",
	Long: `Subweave converts the JSON output of a speech transcription job into
caption artifacts: SRT and WebVTT subtitle files for video players, and SSML
documents with per-phrase duration bounds for speech synthesis.

An SSML document can also be derived from an existing SRT file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
