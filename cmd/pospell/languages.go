package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages with an available dictionary",
		Long:  "List each language with the type and path of its dictionary, tab separated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, s := range a.Sources() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s.Lang, s.Type, s.Path)
			}
			return nil
		},
	}
}
