package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "rewrite [text]",
		Short: "Rewrite text through the local LLM and print the result as JSON",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			auditLog := newAuditLogger()
			defer auditLog.Close()

			pipeline := buildPipeline(auditLog)
			result, err := pipeline.Rewrite(cmd.Context(), text, mode)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "clarity", "rewrite mode (clarity, concise, formal, casual, explain)")
	return cmd
}
