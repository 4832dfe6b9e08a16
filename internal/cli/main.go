package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "dubalign [input]",
		Short:        "Produce an English dub aligned to a Spanish audio file, with subtitles",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return run(cmd, input)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("config", "", "Config file path (default dubalign.yaml)")
	root.Flags().String("out-audio", "", "Output audio file path")
	root.Flags().String("out-subs", "", "Output subtitle file path")
	root.Flags().Bool("yes", false, "Skip interactive prompts (requires the input argument)")

	// Hidden tuning flags (internal)
	root.Flags().String("source", "", "Source language code")
	root.Flags().String("target", "", "Target language code")
	_ = root.Flags().MarkHidden("source")
	_ = root.Flags().MarkHidden("target")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
