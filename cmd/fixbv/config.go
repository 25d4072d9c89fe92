package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/calebcase/fixbv"
)

// settings are the defaults shared by every command. They are read from the
// --config file and then overridden by any flag given explicitly.
type settings struct {
	Shift int    `toml:"shift"`
	Real  bool   `toml:"real"`
	Min   string `toml:"min"`
	Max   string `toml:"max"`
}

func loadConfigFile(path string) (*settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var st settings
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &st, nil
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	st := &settings{}

	if configPath != "" {
		printVerbose(cmd, "Reading config: %s\n", configPath)

		var err error
		st, err = loadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("shift") {
		st.Shift = shiftFlag
	}
	if flags.Changed("real") {
		st.Real = realMode
	}
	if flags.Changed("min") {
		st.Min = minFlag
	}
	if flags.Changed("max") {
		st.Max = maxFlag
	}

	return st, nil
}

// scalar converts a plain command line value. In real mode it is read as a
// decimal or fraction, otherwise as an integer.
func (st *settings) scalar(s string) (any, error) {
	if !st.Real {
		return s, nil
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid real value: %q", s)
	}

	return r, nil
}

// operand returns the settings for a right hand operand: bounds describe
// only the register of the left hand number.
func (st *settings) operand() *settings {
	c := *st
	c.Min, c.Max = "", ""

	return &c
}

func (st *settings) options() ([]fixbv.Option, error) {
	opts := []fixbv.Option{}

	if st.Real {
		opts = append(opts, fixbv.AsReal())
	}

	if st.Min == "" && st.Max == "" {
		return opts, nil
	}

	if st.Min == "" || st.Max == "" {
		return nil, fmt.Errorf("both --min and --max are required, got min=%q max=%q", st.Min, st.Max)
	}

	min, err := st.scalar(st.Min)
	if err != nil {
		return nil, err
	}

	max, err := st.scalar(st.Max)
	if err != nil {
		return nil, err
	}

	return append(opts, fixbv.WithBounds(min, max)), nil
}
