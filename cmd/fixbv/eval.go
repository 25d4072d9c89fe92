package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixbv"
)

type binaryOp func(a *fixbv.Number, x any) (*fixbv.Number, error)

type compareOp func(a *fixbv.Number, x any) (bool, error)

var binaryOps = map[string]binaryOp{
	"+":  (*fixbv.Number).Add,
	"-":  (*fixbv.Number).Sub,
	"*":  (*fixbv.Number).Mul,
	"/":  (*fixbv.Number).Div,
	"//": (*fixbv.Number).FloorDiv,
	"%":  (*fixbv.Number).Mod,
	"**": (*fixbv.Number).Pow,
	"<<": (*fixbv.Number).Lsh,
	">>": (*fixbv.Number).Rsh,
	"&":  (*fixbv.Number).And,
	"|":  (*fixbv.Number).Or,
	"^":  (*fixbv.Number).Xor,
}

var compareOps = map[string]compareOp{
	"==": (*fixbv.Number).Equal,
	"<":  (*fixbv.Number).Less,
	"<=": (*fixbv.Number).LessEqual,
	">":  (*fixbv.Number).Greater,
	">=": (*fixbv.Number).GreaterEqual,
}

func operators() string {
	ops := make([]string, 0, len(binaryOps)+len(compareOps))
	for op := range binaryOps {
		ops = append(ops, op)
	}
	for op := range compareOps {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	return strings.Join(ops, " ")
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate an exact binary operation",
		Long: `The eval command applies a binary operator to two numbers. Arithmetic is
exact and the result is unbounded. --min and --max bound the left operand
only. Comparisons print true or false.

Operators: ` + operators() + `

Example:
  fixbv eval "3 * 2**-1" + "1 * 2**1"
  fixbv eval 1.5 "**" 2 --real --shift=-1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args)
		},
	}

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	a, err := parseNumber(args[0], st)
	if err != nil {
		return err
	}

	b, err := parseNumber(args[2], st.operand())
	if err != nil {
		return err
	}

	op := args[1]
	printVerbose(cmd, "Evaluating %s %s %s\n", canonical(a), op, canonical(b))

	if cmp, ok := compareOps[op]; ok {
		result, err := cmp(a, b)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(cmd, map[string]bool{"result": result})
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)

		return nil
	}

	fn, ok := binaryOps[op]
	if !ok {
		return fmt.Errorf("unknown operator %q, expected one of: %s", op, operators())
	}

	r, err := fn(a, b)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, newNumberView(r))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", canonical(r), realString(r))

	return nil
}
