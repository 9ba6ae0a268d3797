package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

type binaryOp func(x, y integer.Int) (integer.Int, error)

func shiftCount(y integer.Int) (uint, error) {
	n, err := integer.ToUnsigned[uint](y)
	if err != nil {
		return 0, Error.New("shift count or exponent must be a non-negative machine integer: %v", err)
	}
	return n, nil
}

var binaryOps = map[string]binaryOp{
	"+": func(x, y integer.Int) (integer.Int, error) { return x.Add(y), nil },
	"-": func(x, y integer.Int) (integer.Int, error) { return x.Sub(y), nil },
	"*": func(x, y integer.Int) (integer.Int, error) { return x.Mul(y), nil },
	"/": integer.Int.Quo,
	"%": integer.Int.Rem,
	"mod": integer.Int.Mod,
	"**": func(x, y integer.Int) (integer.Int, error) {
		n, err := shiftCount(y)
		if err != nil {
			return integer.Int{}, err
		}
		return x.Pow(n), nil
	},
	"<<": func(x, y integer.Int) (integer.Int, error) {
		n, err := shiftCount(y)
		if err != nil {
			return integer.Int{}, err
		}
		return x.Lsh(n), nil
	},
	">>": func(x, y integer.Int) (integer.Int, error) {
		n, err := shiftCount(y)
		if err != nil {
			return integer.Int{}, err
		}
		return x.Rsh(n), nil
	},
	"cmp": func(x, y integer.Int) (integer.Int, error) {
		return integer.FromSigned(x.Cmp(y)), nil
	},
	"gcd": func(x, y integer.Int) (integer.Int, error) {
		return integer.Gcd(x, y), nil
	},
}

// radixes resolves the input and output radix from the flags, falling back
// to the configured radix.
func (a *app) radixes(in, out int) (int, int) {
	if in == 0 {
		in = a.cfg.Output.Radix
	}
	if out == 0 {
		out = in
	}
	return in, out
}

func (a *app) parse(s string, radix int) (integer.Int, error) {
	x, err := integer.Parse(s, radix)
	if err != nil {
		return integer.Int{}, err
	}

	a.log.Debug("parsed operand", "text", s, "radix", radix, "sign", x.Sign(), "bits", x.BitLen())

	return x, nil
}

func (a *app) evalCmd() *cobra.Command {
	var radix, out int

	cmd := &cobra.Command{
		Use:   "eval X OP Y",
		Short: "Evaluate a binary operation",
		Long: `Evaluate X OP Y where OP is one of:

  +  -  *  /  %  mod  **  <<  >>  cmp  gcd

"/" and "%" truncate toward zero, "mod" is the Euclidean modulus.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, outRadix := a.radixes(radix, out)
			if err := checkRadix(outRadix); err != nil {
				return err
			}

			op, ok := binaryOps[args[1]]
			if !ok {
				return Error.New("unknown operator %q", args[1])
			}

			x, err := a.parse(args[0], in)
			if err != nil {
				return err
			}
			y, err := a.parse(args[2], in)
			if err != nil {
				return err
			}

			z, err := op(x, y)
			if err != nil {
				return err
			}

			a.log.Debug("evaluated", "op", args[1], "bits", z.BitLen())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), z.Text(outRadix))
			return err
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 0, "input radix (default from config, else 10)")
	cmd.Flags().IntVarP(&out, "out", "o", 0, "output radix (default the input radix)")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert an integer between radixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == 0 {
				to = a.cfg.Output.Radix
			}
			if err := checkRadix(to); err != nil {
				return err
			}

			x, err := a.parse(args[0], from)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), x.Text(to))
			return err
		},
	}

	cmd.Flags().IntVarP(&from, "from", "f", 0, "input radix (0 detects 0x, 0o and 0b prefixes)")
	cmd.Flags().IntVarP(&to, "to", "t", 0, "output radix (default from config, else 10)")

	return cmd
}

func (a *app) sqrtCmd() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "sqrt VALUE",
		Short: "Print the integer square root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := a.radixes(radix, 0)
			if err := checkRadix(out); err != nil {
				return err
			}

			x, err := a.parse(args[0], in)
			if err != nil {
				return err
			}

			z, err := x.Sqrt()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), z.Text(out))
			return err
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 0, "input and output radix (default from config, else 10)")

	return cmd
}

func checkRadix(r int) error {
	if r < integer.MinRadix || r > integer.MaxRadix {
		return Error.New("radix %d out of range [%d, %d]", r, integer.MinRadix, integer.MaxRadix)
	}
	return nil
}
