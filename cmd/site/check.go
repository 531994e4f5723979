package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/usecase"
)

var errCheckFailed = errors.New("content check failed")

func checkCmd(st *state) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Report broken links, anchors and assets in the page content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.newApp()
			if err != nil {
				return err
			}

			findings, err := app.Check(cmd.Context())
			if err != nil {
				return err
			}
			result := usecase.CheckOutput{Findings: findings}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if findings == nil {
					findings = []usecase.Finding{}
				}
				if err := enc.Encode(findings); err != nil {
					return err
				}
			} else {
				printFindings(cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr()), findings)
			}

			if result.HasErrors() {
				return errCheckFailed
			}
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print findings as JSON")
	return c
}

func printFindings(out *cli.Output, findings []usecase.Finding) {
	out.PrintHeader("Content Check")

	if len(findings) == 0 {
		out.PrintSuccess("No problems found")
		return
	}

	var errs, warns int
	for _, f := range findings {
		switch f.Severity {
		case usecase.SeverityError:
			errs++
			out.PrintError("%s", f)
		default:
			warns++
			out.PrintWarning("%s", f)
		}
	}
	out.PrintDone("")
	out.PrintStep("", "%d errors, %d warnings", errs, warns)
}
