package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	vm "vector_primitives/vector_math"
)

const (
	appName   = "vectorcalc"
	version   = "v0.1.0"
	envPrefix = "VECTORCALC"
)

type config struct {
	Precision int
	Degrees   bool
	Verbose   bool
}

// calculator carries the resolved configuration into every subcommand.
type calculator struct {
	cfg config
	out io.Writer
}

func (c *calculator) formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', c.cfg.Precision, 64)
}

func (c *calculator) formatVector(o operand) string {
	var comps []float64
	if o.dim == 2 {
		comps = []float64{o.v2.X, o.v2.Y}
	} else {
		comps = []float64{o.v3.X, o.v3.Y, o.v3.Z}
	}
	s := make([]string, len(comps))
	for i, f := range comps {
		s[i] = c.formatScalar(f)
	}
	return "(" + strings.Join(s, ", ") + ")"
}

// angleIn converts a user supplied angle to radians.
func (c *calculator) angleIn(a float64) float64 {
	if c.cfg.Degrees {
		return vm.ToRad(a)
	}
	return a
}

func (c *calculator) angleOut(a float64) float64 {
	if c.cfg.Degrees {
		return vm.ToDeg(a)
	}
	return a
}

func (c *calculator) emit(cmd *cobra.Command, args []string, result string) error {
	if c.cfg.Verbose {
		log.Printf("%s %v -> %s", cmd.Name(), args, result)
	}
	_, err := fmt.Fprintln(c.out, result)
	return err
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	calc := &calculator{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Evaluate 2D and 3D vector algebra from the command line",
		Long: `vectorcalc evaluates vector operations on 2D and 3D vectors.

Vectors are written as comma separated components, "x,y" or "x,y,z". Wrap
vectors with a negative first component in parentheses, "(-1,2)", or put
them after "--". Every flag can also be set through the environment, e.g.
VECTORCALC_PRECISION=4.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			calc.cfg = config{
				Precision: v.GetInt("precision"),
				Degrees:   v.GetBool("degrees"),
				Verbose:   v.GetBool("verbose"),
			}
			if calc.cfg.Precision < -1 {
				return fmt.Errorf("precision %d: %w", calc.cfg.Precision, ErrPrecision)
			}
			calc.out = cmd.OutOrStdout()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.Int("precision", -1, "significant digits in results, -1 for the shortest exact form")
	flags.Bool("degrees", false, "read and print angles in degrees instead of radians")
	flags.BoolP("verbose", "v", false, "log every evaluated operation")
	if err := v.BindPFlags(flags); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	root.AddCommand(
		binaryCmd(calc, "add", "Add two vectors", vm.Vector2.Add, vm.Vector3.Add),
		binaryCmd(calc, "sub", "Subtract the second vector from the first", vm.Vector2.Sub, vm.Vector3.Sub),
		crossCmd(calc),
		dotCmd(calc),
		scalarCmd(calc, "scale", "Multiply a vector by a scalar", vm.Vector2.ScalarMul, vm.Vector3.ScalarMul),
		scalarCmd(calc, "div", "Divide a vector by a scalar", vm.Vector2.ScalarDiv, vm.Vector3.ScalarDiv),
		unaryCmd(calc, "neg", "Negate a vector", vm.Vector2.Negate, vm.Vector3.Negate),
		unaryCmd(calc, "norm", "Normalize a vector to unit length", vm.Vector2.Normalize, vm.Vector3.Normalize),
		measureCmd(calc, "mag", "Magnitude of a vector", vm.Vector2.Magnitude, vm.Vector3.Magnitude),
		measureCmd(calc, "mag2", "Squared magnitude of a vector", vm.Vector2.MagnitudeSquared, vm.Vector3.MagnitudeSquared),
		directionCmd(calc),
		rotateCmd(calc),
		unitCmd(calc),
		polarCmd(calc),
	)
	return root
}
