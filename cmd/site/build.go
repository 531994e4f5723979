package main

import (
	"github.com/spf13/cobra"

	site "github.com/jrgriffin/site"
)

func buildCmd(st *state) *cobra.Command {
	c := &cobra.Command{
		Use:   "build",
		Short: "Export the page and public assets as static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.newApp()
			if err != nil {
				return err
			}

			_, err = app.Export(cmd.Context(), site.ExportOptions{
				OutputDir: st.cfg.OutDir,
				Clean:     st.cfg.Clean,
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			})
			return err
		},
	}

	c.Flags().String("out", "dist", "output directory")
	c.Flags().Bool("clean", false, "remove the output directory before writing")
	return c
}
