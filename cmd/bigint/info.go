package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

// report describes an integer in every supported representation. Failed
// exact conversions hold the error text.
type report struct {
	Sign         string `json:"sign"`
	BitLen       int    `json:"bit_len"`
	Words        int    `json:"words"`
	Binary       string `json:"binary"`
	Octal        string `json:"octal"`
	Decimal      string `json:"decimal"`
	Hex          string `json:"hex"`
	Float64      string `json:"float64"`
	Float64Exact string `json:"float64_exact"`
	Float32      string `json:"float32"`
	Float32Exact string `json:"float32_exact"`
	Int64        string `json:"int64"`
	Int64Trunc   string `json:"int64_trunc"`
}

func orError(s string, err error) string {
	if err != nil {
		return err.Error()
	}
	return s
}

func newReport(x integer.Int) report {
	f64, err64 := x.Float64Exact()
	f32, err32 := x.Float32Exact()
	i64, erri := x.Int64()

	return report{
		Sign:         x.Sign().String(),
		BitLen:       x.BitLen(),
		Words:        len(x.Words()),
		Binary:       x.Text(2),
		Octal:        x.Text(8),
		Decimal:      x.Text(10),
		Hex:          x.Text(16),
		Float64:      strconv.FormatFloat(x.Float64(), 'g', -1, 64),
		Float64Exact: orError(strconv.FormatFloat(f64, 'g', -1, 64), err64),
		Float32:      strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32),
		Float32Exact: orError(strconv.FormatFloat(float64(f32), 'g', -1, 32), err32),
		Int64:        orError(strconv.FormatInt(i64, 10), erri),
		Int64Trunc:   strconv.FormatInt(x.TruncInt64(), 10),
	}
}

func (r report) rows() [][2]string {
	return [][2]string{
		{"sign", r.Sign},
		{"bits", strconv.Itoa(r.BitLen)},
		{"words", strconv.Itoa(r.Words)},
		{"radix 2", r.Binary},
		{"radix 8", r.Octal},
		{"radix 10", r.Decimal},
		{"radix 16", r.Hex},
		{"float64", r.Float64},
		{"float64 exact", r.Float64Exact},
		{"float32", r.Float32},
		{"float32 exact", r.Float32Exact},
		{"int64", r.Int64},
		{"int64 truncated", r.Int64Trunc},
	}
}

func printTable(w io.Writer, r report) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Property").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	for _, kv := range r.rows() {
		row := tab.Row()
		row.Column(kv[0])
		row.Column(kv[1])
	}

	tab.Print(w)
}

func (a *app) infoCmd() *cobra.Command {
	var radix int
	var format string

	cmd := &cobra.Command{
		Use:   "info VALUE",
		Short: "Show an integer in every representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0], radix)
			if err != nil {
				return err
			}

			r := newReport(x)

			switch format {
			case "table":
				printTable(cmd.OutOrStdout(), r)
				return nil
			case "json":
				data, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return Error.Wrap(err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
				return err
			}

			return Error.New("unsupported format %q (must be table or json)", format)
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 0, "input radix (0 detects 0x, 0o and 0b prefixes)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table|json)")

	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the bigint version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bigint %s (%d-bit words)\n", version, integer.WordBits)
			return err
		},
	}
}
