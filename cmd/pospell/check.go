package main

import (
	"github.com/spf13/cobra"

	"github.com/sagerenn/pospell/internal/report"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check catalogs for misspelled words",
		Long: "Check the given catalogs and directories. Without arguments every catalog under " +
			"locales_dir is checked, together with its msgids in the default language.",
		RunE: runCheck,
	}
	checkCmd.Flags().Bool("no-color", false, "disable colored output")
	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	r, err := report.New(a.Config().Format, noColor || !isTerminal(out))
	if err != nil {
		return err
	}

	reports, err := a.Check(args)
	if err != nil {
		return err
	}
	if err := r.Render(out, reports); err != nil {
		return err
	}
	if a.Failed(reports) {
		return errFailed
	}
	return nil
}
