package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixbv"
)

func newQuantizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quantize <real>",
		Short: "Quantize a real value onto a grid",
		Long: `The quantize command rounds a real value (decimal or fraction) half up onto
the grid selected by --shift and reports the quantization error.

Example:
  fixbv quantize 10.5 --shift=-2
  fixbv quantize 1/3 --shift=-8 --min 0 --max 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuantize(cmd, args)
		},
	}

	return cmd
}

type quantizeView struct {
	Input  string     `json:"input"`
	Number numberView `json:"number"`
	Error  string     `json:"error"`
}

func runQuantize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	st.Real = true

	r, ok := new(big.Rat).SetString(args[0])
	if !ok {
		return fmt.Errorf("invalid real value: %q", args[0])
	}

	opts, err := st.options()
	if err != nil {
		return err
	}

	n, err := fixbv.New(r, st.Shift, opts...)
	if err != nil {
		return fmt.Errorf("failed to quantize %q: %w", args[0], err)
	}

	qerr := new(big.Rat).Sub(n.Rat(), r)

	printVerbose(cmd, "Quantized %s onto shift %d\n", r.RatString(), st.Shift)

	if jsonOut {
		return printJSON(cmd, quantizeView{
			Input:  r.RatString(),
			Number: newNumberView(n),
			Error:  qerr.RatString(),
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s = %s (error %s)\n", canonical(n), realString(n), qerr.RatString())

	return nil
}
