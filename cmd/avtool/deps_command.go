package main

import (
	"errors"

	"github.com/spf13/cobra"

	"avtool/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Report availability of the external tools avtool drives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Defaults(cfg))
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), statuses); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(statuses))
				for _, status := range statuses {
					state := "missing"
					if status.Available {
						state = "ok"
					} else if status.Optional {
						state = "missing (optional)"
					}
					detail := status.Path
					if detail == "" {
						detail = status.Detail
					}
					rows = append(rows, []string{status.Name, status.Command, state, detail})
				}
				renderTable(cmd.OutOrStdout(), []string{"Tool", "Command", "Status", "Detail"}, rows)
			}

			if deps.Missing(statuses) {
				return errors.New("required external tools are missing")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Render the report as JSON")

	return cmd
}
