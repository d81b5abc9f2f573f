package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vm "vector_primitives/vector_math"
)

func binaryCmd(calc *calculator, use, short string, f2 func(a, b vm.Vector2) vm.Vector2, f3 func(a, b vm.Vector3) vm.Vector3) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			res, err := combine(ops[0], ops[1], f2, f3)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
}

func crossCmd(calc *calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "cross <a> <b>",
		Short: "Cross product of two 3D vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if ops[0].dim != 3 || ops[1].dim != 3 {
				return fmt.Errorf("cross needs two 3D vectors: %w", ErrDimension)
			}
			res := operand{dim: 3, v3: ops[0].v3.Cross(ops[1].v3)}
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
}

func dotCmd(calc *calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <a> <b>",
		Short: "Dot product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			a, b := ops[0], ops[1]
			if a.dim != b.dim {
				return fmt.Errorf("dot: %dD and %dD: %w", a.dim, b.dim, ErrDimension)
			}
			d := measure(a,
				func(v vm.Vector2) float64 { return v.Dot(b.v2) },
				func(v vm.Vector3) float64 { return v.Dot(b.v3) },
			)
			return calc.emit(cmd, args, calc.formatScalar(d))
		},
	}
}

func scalarCmd(calc *calculator, use, short string, f2 func(vm.Vector2, float64) vm.Vector2, f3 func(vm.Vector3, float64) vm.Vector3) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <v> <scalar>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			res := mapVector(o,
				func(v vm.Vector2) vm.Vector2 { return f2(v, s) },
				func(v vm.Vector3) vm.Vector3 { return f3(v, s) },
			)
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
}

func unaryCmd(calc *calculator, use, short string, f2 func(vm.Vector2) vm.Vector2, f3 func(vm.Vector3) vm.Vector3) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <v>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			return calc.emit(cmd, args, calc.formatVector(mapVector(o, f2, f3)))
		},
	}
}

func measureCmd(calc *calculator, use, short string, f2 func(vm.Vector2) float64, f3 func(vm.Vector3) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <v>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			return calc.emit(cmd, args, calc.formatScalar(measure(o, f2, f3)))
		},
	}
}

func directionCmd(calc *calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "dir <v>",
		Short: "Angle of a vector (or its xy projection) from the x-axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			a := measure(o, vm.Vector2.Direction, vm.Vector3.Direction)
			return calc.emit(cmd, args, calc.formatScalar(calc.angleOut(a)))
		},
	}
}

func rotateCmd(calc *calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <v> <angle>",
		Short: "Rotate a vector counterclockwise about the origin (z axis for 3D)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			angle, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			angle = calc.angleIn(angle)
			res := mapVector(o,
				func(v vm.Vector2) vm.Vector2 { return v.Rotate(angle) },
				func(v vm.Vector3) vm.Vector3 { return v.Rotate(angle) },
			)
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
}

// polarResult builds the 2D or 3D vector of the given length and angle.
func polarResult(magnitude, angle float64, threeD bool) operand {
	if threeD {
		return operand{dim: 3, v3: vm.FromPolar3(magnitude, angle)}
	}
	return operand{dim: 2, v2: vm.FromPolar2(magnitude, angle)}
}

func unitCmd(calc *calculator) *cobra.Command {
	var threeD bool
	cmd := &cobra.Command{
		Use:   "unit <angle>",
		Short: "Unit vector at the given angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			angle = calc.angleIn(angle)
			var res operand
			if threeD {
				res = operand{dim: 3, v3: vm.UnitVector3(angle)}
			} else {
				res = operand{dim: 2, v2: vm.UnitVector2(angle)}
			}
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
	cmd.Flags().BoolVar(&threeD, "3d", false, "produce a 3D vector in the xy-plane")
	return cmd
}

func polarCmd(calc *calculator) *cobra.Command {
	var threeD bool
	cmd := &cobra.Command{
		Use:   "polar <magnitude> <angle>",
		Short: "Vector from polar coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			angle, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			res := polarResult(m, calc.angleIn(angle), threeD)
			return calc.emit(cmd, args, calc.formatVector(res))
		},
	}
	cmd.Flags().BoolVar(&threeD, "3d", false, "produce a 3D vector in the xy-plane")
	return cmd
}
