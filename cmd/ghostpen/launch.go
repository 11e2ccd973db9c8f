package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghostpen/ghostpen/internal/provider"
)

func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Start LM Studio in the background (best-effort)",
		RunE: func(_ *cobra.Command, _ []string) error {
			auditLog := newAuditLogger()
			defer auditLog.Close()

			msg, err := provider.LaunchLMStudio()

			details := map[string]any{"success": err == nil}
			if err != nil {
				details["path_or_error"] = err.Error()
			} else {
				details["path_or_error"] = msg
			}
			auditLog.Record("llm_launch", details)

			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
