package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

// run executes the command line against a fresh command tree and returns
// what it printed.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "canonical",
			args:        []string{"show", "3 * 2**-1"},
			wantContain: []string{"canonical", "3 * 2**-1", "1.5", "b011"},
		},
		{
			name:        "bounded",
			args:        []string{"show", "12", "--shift=-3", "--min", "0", "--max", "16"},
			wantContain: []string{"12 * 2**-3", "1.5", "min", "16"},
		},
		{
			name:        "real",
			args:        []string{"show", "1.375", "--real", "--shift=-3"},
			wantContain: []string{"11 * 2**-3", "1.375"},
		},
		{
			name:    "out of range",
			args:    []string{"show", "5", "--min", "0", "--max", "4"},
			wantErr: true,
		},
		{
			name:    "missing max",
			args:    []string{"show", "5", "--min", "0"},
			wantErr: true,
		},
		{
			name:    "real without flag",
			args:    []string{"show", "1.5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContain {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestShowJSON(t *testing.T) {
	out, _, err := run(t, "show", "12", "--json", "--shift=-3", "--min", "0", "--max", "16")
	require.NoError(t, err)

	var v numberView
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))

	require.Equal(t, "12 * 2**-3", v.Canonical)
	require.Equal(t, "1.5", v.Real)
	require.Equal(t, "12", v.Stored)
	require.Equal(t, -3, v.Shift)
	require.Equal(t, 3, v.FractionLength)
	require.NotNil(t, v.Min)
	require.Equal(t, "0", *v.Min)
	require.Equal(t, "16", *v.Max)
	require.Equal(t, 5, v.BitWidth)
	require.Equal(t, "1/8", v.Resolution)
	require.Equal(t, "b01100", v.Trace)
}

func TestQuantizeCommand(t *testing.T) {
	out, _, err := run(t, "quantize", "10.5", "--shift=-2")
	require.NoError(t, err)
	require.Equal(t, "42 * 2**-2 = 10.5 (error 0)\n", out)

	out, _, err = run(t, "quantize", "10.625", "--shift=2")
	require.NoError(t, err)
	require.Equal(t, "3 * 2**2 = 12 (error 11/8)\n", out)

	out, stderr, err := run(t, "quantize", "1/3", "--shift=-4", "--json", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "Quantized 1/3")

	var v quantizeView
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "5", v.Number.Stored)
	require.Equal(t, "-1/48", v.Error)

	_, _, err = run(t, "quantize", "abc")
	require.Error(t, err)
}

func TestAlignCommand(t *testing.T) {
	out, _, err := run(t, "align", "100 * 2**10", "10 * 2**2", "--json")
	require.NoError(t, err)

	var v alignView
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "25600", v.A.Stored)
	require.Equal(t, 2, v.A.Shift)
	require.Equal(t, "10", v.B.Stored)
	require.Equal(t, 2, v.B.Shift)

	out, _, err = run(t, "align", "1", "100 * 2**0", "--json", "--min", "0", "--max", "4")
	require.NoError(t, err)

	v = alignView{}
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "100", v.B.Stored)
	require.NotNil(t, v.A.Min)
	require.Nil(t, v.B.Min)

	out, _, err = run(t, "align", "3 * 2**-1", "1 * 2**1")
	require.NoError(t, err)
	require.Contains(t, out, "stored")
	require.Contains(t, out, "1.5")
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "add", args: []string{"3 * 2**-1", "+", "1 * 2**1"}, want: "7 * 2**-1 = 3.5\n"},
		{name: "mul", args: []string{"10 * 2**2", "*", "10 * 2**2"}, want: "100 * 2**4 = 1600\n"},
		{name: "floor div", args: []string{"7", "//", "2"}, want: "3 * 2**0 = 3\n"},
		{name: "pow", args: []string{"3 * 2**-1", "**", "2"}, want: "9 * 2**-2 = 2.25\n"},
		{name: "rescale", args: []string{"3 * 2**-1", "<<", "2"}, want: "3 * 2**1 = 6\n"},
		{name: "equal", args: []string{"4 * 2**-1", "==", "1 * 2**1"}, want: "true\n"},
		{name: "greater", args: []string{"3 * 2**-1", ">", "2"}, want: "false\n"},
		{name: "true division", args: []string{"1", "/", "2"}, wantErr: true},
		{name: "bitwise and", args: []string{"1", "&", "2"}, wantErr: true},
		{name: "unknown", args: []string{"1", "?", "2"}, wantErr: true},
		{name: "bounds left only", args: []string{"3", "+", "9", "--min", "0", "--max", "4"}, want: "12 * 2**0 = 12\n"},
		{name: "bounded left", args: []string{"5", "+", "1", "--min", "0", "--max", "4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"eval"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestSliceCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "range", args: []string{"214 * 2**-2", "4", "0"}, want: "0101 (5, width 4)\n"},
		{name: "default j", args: []string{"214 * 2**-2", "4"}, want: "010110 (22, width 6)\n"},
		{name: "open", args: []string{"214 * 2**-2", "-", "0"}, want: "110101 (53, width 0)\n"},
		{name: "below grid", args: []string{"--", "214 * 2**-2", "4", "-3"}, wantErr: true},
		{name: "bad index", args: []string{"214 * 2**-2", "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"slice"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestEncodeDecodeCommands(t *testing.T) {
	out, _, err := run(t, "encode", "3 * 2**-1", "--min", "0", "--max", "8")
	require.NoError(t, err)
	require.Equal(t, "260d8090\n", out)

	out, _, err = run(t, "encode", "5")
	require.NoError(t, err)
	require.Equal(t, "a80000\n", out)

	out, _, err = run(t, "decode", "260d8090", "--json")
	require.NoError(t, err)

	var v numberView
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "3 * 2**-1", v.Canonical)
	require.Equal(t, "8", *v.Max)

	_, _, err = run(t, "decode", "zz")
	require.Error(t, err)

	_, _, err = run(t, "decode", "a800")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixbv.toml")
	require.NoError(t, os.WriteFile(path, []byte("shift = -2\nreal = true\n"), 0o644))

	out, _, err := run(t, "show", "1.25", "--config", path, "--json")
	require.NoError(t, err)

	var v numberView
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "5", v.Stored)
	require.Equal(t, -2, v.Shift)

	out, _, err = run(t, "show", "1.25", "--config", path, "--json", "--shift=-1")
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal([]byte(out), &v))
	require.Equal(t, "3", v.Stored)

	_, _, err = run(t, "show", "1", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
