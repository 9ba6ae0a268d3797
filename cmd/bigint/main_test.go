package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(append([]string{"--color", "off"}, args...), &out, &errOut)

	return out.String(), errOut.String(), code
}

func TestGolden(t *testing.T) {
	type TC struct {
		name string
		args []string
	}

	tcs := []TC{
		{name: "eval_add", args: []string{"eval", "--", "123456789123456789123456789", "+", "-987654321987654321"}},
		{name: "eval_mul", args: []string{"eval", "--", "123456789123456789123456789123456789", "*", "-987654321987654321"}},
		{name: "eval_quo", args: []string{"eval", "--", "-7", "/", "2"}},
		{name: "eval_rem", args: []string{"eval", "--", "-7", "%", "2"}},
		{name: "eval_mod", args: []string{"eval", "--", "-7", "mod", "2"}},
		{name: "eval_pow", args: []string{"eval", "2", "**", "100"}},
		{name: "eval_lsh_hex", args: []string{"eval", "--radix", "16", "ff", "<<", "8"}},
		{name: "eval_cmp", args: []string{"eval", "--", "-5", "cmp", "3"}},
		{name: "eval_gcd", args: []string{"eval", "--", "-12", "gcd", "18"}},
		{name: "eval_out", args: []string{"eval", "--out", "2", "5", "+", "5"}},
		{name: "convert_hex", args: []string{"convert", "--to", "16", "--", "-255"}},
		{name: "convert_prefix", args: []string{"convert", "0b101010"}},
		{name: "convert_base36", args: []string{"convert", "--from", "36", "--to", "10", "ZZ"}},
		{name: "sqrt", args: []string{"sqrt", "340282366920938463463374607431768211456"}},
		{name: "info_json", args: []string{"info", "--format", "json", "--", "-255"}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			stdout, stderr, code := execute(t, tc.args...)
			require.Equal(t, 0, code, stderr)
			require.Empty(t, stderr)

			newGolden(t).Assert(t, tc.name, []byte(stdout))
		})
	}
}

func TestErrors(t *testing.T) {
	type TC struct {
		name string
		args []string
		want string
	}

	tcs := []TC{
		{name: "divide by zero", args: []string{"eval", "1", "/", "0"}, want: "division by zero"},
		{name: "bad digit", args: []string{"eval", "12a", "+", "1"}, want: "invalid digit"},
		{name: "bad operator", args: []string{"eval", "1", "^", "1"}, want: "unknown operator"},
		{name: "negative shift", args: []string{"eval", "--", "1", "<<", "-1"}, want: "non-negative"},
		{name: "negative sqrt", args: []string{"sqrt", "--", "-4"}, want: "negative"},
		{name: "bad radix", args: []string{"convert", "--to", "37", "1"}, want: "radix 37"},
		{name: "bad format", args: []string{"info", "--format", "xml", "1"}, want: "unsupported format"},
		{name: "missing args", args: []string{"eval", "1", "+"}, want: "accepts 3 arg(s)"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			stdout, stderr, code := execute(t, tc.args...)
			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "error:")
			require.Contains(t, stderr, tc.want)
		})
	}
}

func TestInfoTable(t *testing.T) {
	stdout, stderr, code := execute(t, "info", "0x10000000000000001")
	require.Equal(t, 0, code, stderr)

	for _, want := range []string{"Property", "Value", "positive", "65", "10000000000000001", "18446744073709551617", "float64 exact", "int64 truncated"} {
		require.Contains(t, stdout, want)
	}
	require.Contains(t, stdout, "significant bits")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("radix", func(t *testing.T) {
		path := filepath.Join(dir, "hex.toml")
		require.NoError(t, os.WriteFile(path, []byte("[output]\nradix = 16\ncolor = \"off\"\n"), 0o600))

		stdout, stderr, code := execute(t, "--config", path, "eval", "ff", "+", "1")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, "100\n", stdout)

		stdout, _, code = execute(t, "--config", path, "convert", "255")
		require.Equal(t, 0, code)
		require.Equal(t, "ff\n", stdout)
	})

	t.Run("verbose", func(t *testing.T) {
		path := filepath.Join(dir, "plain.toml")
		require.NoError(t, os.WriteFile(path, []byte("[output]\nradix = 10\n"), 0o600))

		stdout, stderr, code := execute(t, "--config", path, "--verbose", "eval", "2", "*", "3")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, "6\n", stdout)
		require.Contains(t, stderr, "loaded config")
		require.Contains(t, stderr, "parsed operand")
	})

	t.Run("invalid", func(t *testing.T) {
		type TC struct {
			name string
			body string
			want string
		}

		tcs := []TC{
			{name: "radix", body: "[output]\nradix = 40\n", want: "out of range"},
			{name: "color", body: "[output]\ncolor = \"blue\"\n", want: "auto, on or off"},
			{name: "unknown", body: "[output]\nwidth = 3\n", want: "unknown key"},
			{name: "syntax", body: "[output\n", want: "failed to parse TOML"},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				path := filepath.Join(dir, tc.name+".toml")
				require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))

				_, stderr, code := execute(t, "--config", path, "version")
				require.Equal(t, 1, code)
				require.Contains(t, stderr, tc.want)
			})
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, stderr, code := execute(t, "--config", filepath.Join(dir, "nope.toml"), "version")
		require.Equal(t, 1, code)
		require.Contains(t, stderr, "nope.toml")
	})
}

func TestColorMode(t *testing.T) {
	var buf bytes.Buffer

	on, err := colorEnabled("on", &buf)
	require.NoError(t, err)
	require.True(t, on)

	auto, err := colorEnabled("auto", &buf)
	require.NoError(t, err)
	require.False(t, auto)

	_, err = colorEnabled("rainbow", &buf)
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "bigint "+version)
}
