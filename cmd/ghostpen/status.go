package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report which local LLM server is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			auditLog := newAuditLogger()
			defer auditLog.Close()

			pipeline := buildPipeline(auditLog)
			status := pipeline.Status(cmd.Context())

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}
}
