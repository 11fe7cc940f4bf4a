package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"avtool/internal/webpmux"
)

func newWebPCommand(ctx *commandContext) *cobra.Command {
	var binaryFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "webp [flags] PATH...",
		Short: "Describe WebP files using webpmux",
		Long: `Read WebP container information (canvas size, features, frame table)
by running webpmux -info against each path. No image data is decoded.

Each path is inspected independently; a failing path is reported on
stderr and does not stop the remaining paths.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			binary := firstNonEmpty(binaryFlag, cfg.WebP.WebpmuxBinary)

			failed := 0
			for _, path := range args {
				info, err := webpmux.Inspect(cmd.Context(), binary, path, logger)
				if err == nil {
					if asJSON {
						err = writeJSON(cmd.OutOrStdout(), info)
					} else {
						err = webpmux.Describe(cmd.OutOrStdout(), path, info)
					}
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "avtool: %s: %v\n", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d paths failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&binaryFlag, "webpmux", "", "webpmux binary (default: configured)")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Render the report as JSON")

	return cmd
}
