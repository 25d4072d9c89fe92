package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show the properties of a number",
		Long: `The show command displays a number's stored integer, shift, bounds,
bit width and its real and trace renderings.

Example:
  fixbv show "3 * 2**-1"
  fixbv show 12 --shift=-3 --min 0 --max 16
  fixbv show 1.375 --real --shift=-3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args)
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	n, err := parseNumber(args[0], st)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, newNumberView(n))
	}

	renderNumber(cmd.OutOrStdout(), n)

	return nil
}
