package main

import (
	"fmt"

	"github.com/spf13/cobra"

	site "github.com/jrgriffin/site"
	"github.com/jrgriffin/site/internal/adapters/fs"
	"github.com/jrgriffin/site/internal/config"
	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
	"github.com/jrgriffin/site/internal/logger"
)

// state carries what the root pre-run resolved into the subcommands.
type state struct {
	cfg     config.Config
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	var configFile string
	st := &state{}

	cmd := &cobra.Command{
		Use:          "site",
		Short:        "Render, serve and export the profile page",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				File:  configFile,
				Flags: cmd.Flags(),
			})
			if err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{
				Debug:  cfg.Debug,
				Format: cfg.LogFormat,
				File:   cfg.LogFile,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}

			st.cfg = cfg
			st.cleanup = cleanup
			logger.L().Debug("config.loaded", "file", cfg.ConfigFile, "mode", cfg.Mode().String())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if st.cleanup != nil {
				return st.cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./site.yaml)")
	cmd.PersistentFlags().String("content", "", "YAML file overriding the built-in page copy")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	cmd.AddCommand(
		serveCmd(st),
		buildCmd(st),
		checkCmd(st),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func (s *state) newApp() (*site.App, error) {
	osfs := fs.NewOSFileSystem()

	c, err := content.LoadFile(osfs, s.cfg.ContentFile)
	if err != nil {
		return nil, err
	}

	opts := []site.Option{
		site.WithContent(c),
		site.WithMode(s.cfg.Mode()),
		site.WithStylesheets(s.cfg.Stylesheets...),
		site.WithScripts(s.cfg.Scripts...),
		site.WithLogger(logger.L()),
	}

	if s.cfg.PublicDir != "" {
		if osfs.Public(s.cfg.PublicDir) == nil {
			return nil, &core.OpError{Op: "public.open", Kind: core.KindNotFound, Path: s.cfg.PublicDir}
		}
		opts = append(opts, site.WithPublicDir(s.cfg.PublicDir))
	}

	return site.New(opts...), nil
}
