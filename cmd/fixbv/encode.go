package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixbv"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <number>",
		Short: "Encode a number to its binary form",
		Long: `The encode command prints the binary encoding of a number, including its
bounds, as hex.

Example:
  fixbv encode "3 * 2**-1" --min 0 --max 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args)
		},
	}

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	n, err := parseNumber(args[0], st)
	if err != nil {
		return err
	}

	data, err := n.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	printVerbose(cmd, "Encoded %s in %d bytes\n", canonical(n), len(data))

	if jsonOut {
		return printJSON(cmd, map[string]string{"hex": hex.EncodeToString(data)})
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

	return nil
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a number from its binary form",
		Long: `The decode command reads a hex encoded number, as printed by encode, and
shows its properties.

Example:
  fixbv decode 260d8090`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args)
		},
	}

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}

	n := &fixbv.Number{}
	if err := n.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	if jsonOut {
		return printJSON(cmd, newNumberView(n))
	}

	renderNumber(cmd.OutOrStdout(), n)

	return nil
}
