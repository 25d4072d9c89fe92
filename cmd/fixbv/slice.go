package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixbv/bitvec"
)

func newSliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice <number> <i> [j]",
		Short: "Slice the stored bits of a number",
		Long: `The slice command extracts bits [i, j) of a number using real bit indices:
index shift is the least significant stored bit. j defaults to the shift.
An i of "-" selects every bit at or above j.

Example:
  fixbv slice "214 * 2**-2" 4 0
  fixbv slice "214 * 2**-2" - 0`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(cmd, args)
		},
	}

	return cmd
}

type sliceView struct {
	Bits  string `json:"bits"`
	Value string `json:"value"`
	Width int    `json:"width"`
}

func runSlice(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	n, err := parseNumber(args[0], st)
	if err != nil {
		return err
	}

	j := n.Shift()
	if len(args) == 3 {
		j, err = strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index j: %w", err)
		}
	}

	var v *bitvec.Vector

	if args[1] == "-" {
		v, err = n.SliceFrom(j)
	} else {
		var i int
		i, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index i: %w", err)
		}

		v, err = n.Slice(i, j)
	}
	if err != nil {
		return err
	}

	view := sliceView{
		Bits:  v.String(),
		Value: v.Int().String(),
		Width: v.Width(),
	}

	if jsonOut {
		return printJSON(cmd, view)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, width %d)\n", view.Bits, view.Value, view.Width)

	return nil
}
