package cli

import (
	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/spf13/pflag"
)

// exprFlag is a pflag.Value holding a classified expression. Set rejects
// malformed or unsupported input at parse time.
type exprFlag struct {
	value string
	shape cronexpr.Shape
}

var _ pflag.Value = (*exprFlag)(nil)

func (f *exprFlag) String() string { return f.value }

func (f *exprFlag) Set(s string) error {
	expr, err := cronexpr.Parse(s)
	if err != nil {
		return err
	}
	shape, err := expr.Shape()
	if err != nil {
		return err
	}
	f.value = expr.String()
	f.shape = shape
	return nil
}

func (f *exprFlag) Type() string { return "expr" }

// shapeFlag is a pflag.Value restricted to the six shape names.
type shapeFlag struct {
	name string
}

var _ pflag.Value = (*shapeFlag)(nil)

func (f *shapeFlag) String() string { return f.name }

func (f *shapeFlag) Set(s string) error {
	shape, err := cronexpr.ParseShape(s)
	if err != nil {
		return err
	}
	f.name = shape.String()
	return nil
}

func (f *shapeFlag) Type() string { return "shape" }
