package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	vm "vector_primitives/vector_math"
)

var (
	ErrDimension  = errors.New("operands have mismatched or unsupported dimension")
	ErrComponents = errors.New("a vector needs 2 or 3 comma separated components")
	ErrPrecision  = errors.New("precision must be -1 or a non-negative digit count")
)

// operand is a parsed command line vector, either 2D or 3D.
type operand struct {
	dim int
	v2  vm.Vector2
	v3  vm.Vector3
}

// parseOperand reads "x,y" or "x,y,z", optionally wrapped in parentheses so
// negative leading components don't look like flags.
func parseOperand(s string) (operand, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	fields := strings.Split(body, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return operand{}, fmt.Errorf("%q: %w", s, ErrComponents)
	}
	c := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return operand{}, fmt.Errorf("component %d of %q: %w", i+1, s, err)
		}
		c[i] = x
	}
	if len(c) == 2 {
		return operand{dim: 2, v2: vm.NewVector2(c...)}, nil
	}
	return operand{dim: 3, v3: vm.NewVector3(c...)}, nil
}

func parseScalar(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w", s, err)
	}
	return f, nil
}

func parseOperands(args []string) ([]operand, error) {
	ops := make([]operand, len(args))
	for i, a := range args {
		o, err := parseOperand(a)
		if err != nil {
			return nil, err
		}
		ops[i] = o
	}
	return ops, nil
}

func mapVector(o operand, f2 func(vm.Vector2) vm.Vector2, f3 func(vm.Vector3) vm.Vector3) operand {
	if o.dim == 2 {
		return operand{dim: 2, v2: f2(o.v2)}
	}
	return operand{dim: 3, v3: f3(o.v3)}
}

func combine(a, b operand, f2 func(x, y vm.Vector2) vm.Vector2, f3 func(x, y vm.Vector3) vm.Vector3) (operand, error) {
	if a.dim != b.dim {
		return operand{}, fmt.Errorf("%dD and %dD: %w", a.dim, b.dim, ErrDimension)
	}
	return mapVector(a,
		func(x vm.Vector2) vm.Vector2 { return f2(x, b.v2) },
		func(x vm.Vector3) vm.Vector3 { return f3(x, b.v3) },
	), nil
}

func measure(o operand, f2 func(vm.Vector2) float64, f3 func(vm.Vector3) float64) float64 {
	if o.dim == 2 {
		return f2(o.v2)
	}
	return f3(o.v3)
}
