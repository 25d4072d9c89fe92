package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/calebcase/fixbv"
)

// parseNumber reads a number given in canonical form or as a plain value on
// the configured grid.
func parseNumber(s string, st *settings) (*fixbv.Number, error) {
	opts, err := st.options()
	if err != nil {
		return nil, err
	}

	if strings.Contains(s, "*") {
		n, err := fixbv.Parse(s, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", s, err)
		}

		return n, nil
	}

	v, err := st.scalar(s)
	if err != nil {
		return nil, err
	}

	n, err := fixbv.New(v, st.Shift, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", s, err)
	}

	return n, nil
}

// realString renders the real value of n regardless of its flags.
func realString(n *fixbv.Number) string {
	return fixbv.Must(fixbv.New(n, 0, fixbv.PrintReal())).String()
}

// canonical renders n as "<stored> * 2**<shift>" regardless of its flags.
func canonical(n *fixbv.Number) string {
	text, _ := n.MarshalText()

	return string(text)
}

type numberView struct {
	Canonical      string  `json:"canonical"`
	Real           string  `json:"real"`
	Stored         string  `json:"stored"`
	Shift          int     `json:"shift"`
	FractionLength int     `json:"fraction_length"`
	Min            *string `json:"min,omitempty"`
	Max            *string `json:"max,omitempty"`
	BitWidth       int     `json:"bit_width"`
	Resolution     string  `json:"resolution"`
	Signed         string  `json:"signed"`
	Trace          string  `json:"trace"`
}

func newNumberView(n *fixbv.Number) numberView {
	v := numberView{
		Canonical:      canonical(n),
		Real:           realString(n),
		Stored:         n.StoredInteger().String(),
		Shift:          n.Shift(),
		FractionLength: n.FractionLength(),
		BitWidth:       n.BitWidth(),
		Resolution:     n.Resolution().RatString(),
		Signed:         n.Signed().String(),
		Trace:          n.TraceString(),
	}

	if n.Bounded() {
		min, max := n.Min().String(), n.Max().String()
		v.Min, v.Max = &min, &max
	}

	return v
}

func renderNumber(w io.Writer, n *fixbv.Number) {
	v := newNumberView(n)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"property", "value"})
	t.AppendRow(table.Row{"canonical", v.Canonical})
	t.AppendRow(table.Row{"real", v.Real})
	t.AppendRow(table.Row{"stored", v.Stored})
	t.AppendRow(table.Row{"shift", v.Shift})
	t.AppendRow(table.Row{"fraction length", v.FractionLength})

	if v.Min != nil {
		t.AppendRow(table.Row{"min", *v.Min})
		t.AppendRow(table.Row{"max", *v.Max})
	}

	t.AppendRow(table.Row{"bit width", v.BitWidth})
	t.AppendRow(table.Row{"resolution", v.Resolution})
	t.AppendRow(table.Row{"signed", v.Signed})
	t.AppendRow(table.Row{"trace", v.Trace})

	t.Render()
}
