package main

import (
	"github.com/spf13/cobra"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/adapters/fs"
	"github.com/jrgriffin/site/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter site.yaml and content.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			result := usecase.NewInitService(fs.NewOSFileSystem(), out).InitProject(usecase.InitInput{
				ProjectDir: dir,
				Force:      force,
			})
			return result.Error
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
