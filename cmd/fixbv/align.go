package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align <a> <b>",
		Short: "Align two numbers onto their common grid",
		Long: `The align command re-expresses two numbers on the finer of their two grids
without losing precision.

Example:
  fixbv align "100 * 2**10" "10 * 2**2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args)
		},
	}

	return cmd
}

type alignView struct {
	A numberView `json:"a"`
	B numberView `json:"b"`
}

func runAlign(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	a, err := parseNumber(args[0], st)
	if err != nil {
		return err
	}

	b, err := parseNumber(args[1], st.operand())
	if err != nil {
		return err
	}

	a, b, err = a.Align(b)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, alignView{
			A: newNumberView(a),
			B: newNumberView(b),
		})
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"", "stored", "shift", "real"})
	t.AppendRow(table.Row{"a", a.StoredInteger().String(), a.Shift(), realString(a)})
	t.AppendRow(table.Row{"b", b.StoredInteger().String(), b.Shift(), realString(b)})

	t.Render()

	return nil
}
