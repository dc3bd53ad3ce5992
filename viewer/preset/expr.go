package preset

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"vecview/viewer/geom"
	"vecview/viewer/scene"
)

var ErrExpr = errors.New("preset: bad expression")

// ExprSpec describes a user-defined preset. X and Y are evaluated once per
// vector with i (0-based index), n (count), t (2π·i/n) and pi in scope.
type ExprSpec struct {
	Name  string
	Count int
	X, Y  string
	Color color.RGBA
}

// Expr is a preset whose vectors come from compiled expressions.
type Expr struct {
	spec ExprSpec
	x, y *vm.Program
}

// NewExpr compiles spec.
func NewExpr(spec ExprSpec) (*Expr, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrExpr)
	}
	if spec.Count < 0 {
		return nil, fmt.Errorf("%w: %s: negative count %d", ErrExpr, spec.Name, spec.Count)
	}
	x, err := compile(spec.X)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: x: %v", ErrExpr, spec.Name, err)
	}
	y, err := compile(spec.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: y: %v", ErrExpr, spec.Name, err)
	}
	if spec.Color.A == 0 {
		spec.Color = rgb(80, 220, 160)
	}
	return &Expr{spec: spec, x: x, y: y}, nil
}

func (e *Expr) Name() string { return e.spec.Name }

// Generate evaluates the expressions for every index. A vector whose
// expressions fail to evaluate or yield a non-finite value is skipped.
func (e *Expr) Generate(c *scene.Collection) {
	c.Reset()
	n := e.spec.Count
	for i := 0; i < n; i++ {
		env := exprEnv(i, n)
		x, err := eval(e.x, env)
		if err != nil {
			continue
		}
		y, err := eval(e.y, env)
		if err != nil {
			continue
		}
		c.Append(geom.V(x, y), e.spec.Color)
	}
}

func exprEnv(i, n int) map[string]any {
	t := 0.0
	if n > 0 {
		t = 2 * math.Pi * float64(i) / float64(n)
	}
	return map[string]any{"i": i, "n": n, "t": t, "pi": math.Pi}
}

func unary(name string, fn func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(params))
		}
		v, err := toFloat(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return fn(v), nil
	})
}

func compile(src string) (*vm.Program, error) {
	if src == "" {
		return nil, errors.New("empty expression")
	}
	return expr.Compile(src,
		expr.Env(exprEnv(0, 1)),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("sqrt", math.Sqrt),
	)
}

func eval(p *vm.Program, env map[string]any) (float64, error) {
	out, err := expr.Run(p, env)
	if err != nil {
		return 0, err
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite result %v", v)
	}
	return v, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
