package pair

import (
	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"
)

// Filter keeps the pairs for which a CEL expression over `first` and `second` is true.
type Filter struct {
	expr string
	prg  cel.Program
}

func NewFilter(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("first", cel.StringType),
		cel.Variable("second", cel.StringType),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create filter environment")
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Wrapf(iss.Err(), "compile filter %q", expr)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Newf("filter %q must evaluate to bool, got %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "build filter %q", expr)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

func (f *Filter) Match(p Pair) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{"first": p.First, "second": p.Second})
	if err != nil {
		return false, errors.Wrapf(err, "evaluate filter %q for %q", f.expr, p.String())
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, errors.AssertionFailedf("filter %q returned %T", f.expr, out.Value())
	}
	return b, nil
}

func (f *Filter) Apply(pairs []Pair) ([]Pair, error) {
	kept := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (f *Filter) String() string {
	return f.expr
}
