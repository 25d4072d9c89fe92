package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOut    bool
	configPath string
	realMode   bool
	shiftFlag  int
	minFlag    string
	maxFlag    string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixbv",
		Short: "Inspect and compute with scaled integer numbers",
		Long: `fixbv is a tool for inspecting scaled integer ("fixed point") numbers of
the form stored * 2**shift. It quantizes real values onto a grid, performs
exact arithmetic, slices bits and converts numbers to and from their binary
encoding.

Numbers are given either in canonical form ("3 * 2**-1") or as a plain value
placed on the grid selected by --shift.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Read defaults from a TOML file")
	cmd.PersistentFlags().BoolVarP(&realMode, "real", "r", false, "Accept and print real values")
	cmd.PersistentFlags().IntVarP(&shiftFlag, "shift", "s", 0, "Shift of the grid for plain values")
	cmd.PersistentFlags().StringVar(&minFlag, "min", "", "Lower bound (inclusive)")
	cmd.PersistentFlags().StringVar(&maxFlag, "max", "", "Upper bound (exclusive)")

	cmd.AddCommand(
		newShowCmd(),
		newQuantizeCmd(),
		newAlignCmd(),
		newEvalCmd(),
		newSliceCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
	)

	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printVerbose prints a message to the error stream if verbose mode is
// enabled.
func printVerbose(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

// printJSON outputs v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}
