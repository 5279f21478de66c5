package main

import (
	"sort"
	"strings"

	"github.com/born-ml/trace/autodiff"
)

// function is a reference function of one variable.
type function func(tr *autodiff.Tracer, x *autodiff.Value) (*autodiff.Value, error)

var functions = map[string]function{
	// (exp(x²))²
	"square-exp-square": func(tr *autodiff.Tracer, x *autodiff.Value) (*autodiff.Value, error) {
		a, err := tr.Square(x)
		if err != nil {
			return nil, err
		}
		b, err := tr.Exp(a)
		if err != nil {
			return nil, err
		}
		return tr.Square(b)
	},
	// a = x², a² + a²: 2x⁴ through a shared intermediate
	"diamond": func(tr *autodiff.Tracer, x *autodiff.Value) (*autodiff.Value, error) {
		a, err := tr.Square(x)
		if err != nil {
			return nil, err
		}
		b, err := tr.Square(a)
		if err != nil {
			return nil, err
		}
		c, err := tr.Square(a)
		if err != nil {
			return nil, err
		}
		return tr.Add(b, c)
	},
	// x³ - 2x + 1
	"poly": func(_ *autodiff.Tracer, x *autodiff.Value) (*autodiff.Value, error) {
		cube, err := x.Pow(3)
		if err != nil {
			return nil, err
		}
		twoX, err := x.Mul(2.0)
		if err != nil {
			return nil, err
		}
		d, err := cube.Sub(twoX)
		if err != nil {
			return nil, err
		}
		return d.Add(1.0)
	},
	// sin(x)·cos(x) + tanh(x)
	"trig": func(tr *autodiff.Tracer, x *autodiff.Value) (*autodiff.Value, error) {
		s, err := tr.Sin(x)
		if err != nil {
			return nil, err
		}
		c, err := tr.Cos(x)
		if err != nil {
			return nil, err
		}
		sc, err := s.Mul(c)
		if err != nil {
			return nil, err
		}
		th, err := tr.Tanh(x)
		if err != nil {
			return nil, err
		}
		return sc.Add(th)
	},
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
