package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghostpen/ghostpen/internal/grammar"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [text]",
		Short: "Check text for grammar issues and print the result as JSON",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			auditLog := newAuditLogger()
			defer auditLog.Close()

			adapter := grammar.NewAdapter(buildLinter(), auditLog)
			result := adapter.Check(text)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
