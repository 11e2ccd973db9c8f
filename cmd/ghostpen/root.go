package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghostpen/ghostpen/internal/audit"
	"github.com/ghostpen/ghostpen/internal/config"
	"github.com/ghostpen/ghostpen/internal/grammar"
	"github.com/ghostpen/ghostpen/internal/rewrite"
)

var (
	cfgFile string
	cfg     config.Config
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ghostpen",
		Short:        "GhostPen, a local writing assistant backend",
		Long:         "Grammar checking and LLM-backed rewriting against whichever local inference server is running (LM Studio or Ollama).",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config.yaml")

	cmd.AddCommand(
		newServeCmd(),
		newCheckCmd(),
		newRewriteCmd(),
		newStatusCmd(),
		newLaunchCmd(),
	)
	return cmd
}

func buildLinter() grammar.Linter {
	if cfg.LintCmd != "" {
		return &grammar.CommandLinter{Command: cfg.LintCmd}
	}
	return grammar.NopLinter{}
}

func buildPipeline(recorder rewrite.Recorder) *rewrite.Pipeline {
	p := rewrite.NewPipeline(recorder)
	p.Detector.Candidates = cfg.Candidates()
	return p
}

func newAuditLogger() *audit.Logger {
	return audit.NewLogger(cfg.DataDir, 64)
}

// readText takes the text from the args, or from stdin when absent or "-".
func readText(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
