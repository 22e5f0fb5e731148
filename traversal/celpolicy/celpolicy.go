// Package celpolicy compiles traversal Policies from CEL expressions.
//
// Predicate expressions see:
//
//	source     int     node the current node was discovered from
//	current    int     node being decided on
//	weight     double  aggregated weight of current
//	source_id  string  original ID of source
//	current_id string  original ID of current
//
// and must yield a bool (true = follow, false = continue) or one of the
// strings "follow", "break", "continue".
//
// Aggregator expressions see the same names, with source the node being
// expanded, current the discovered neighbor and weight the aggregated weight
// of source, plus:
//
//	edge       double  weight of the relationship source→current along dir
//
// and must yield a number.
//
// Example: the max-cost preset is
//
//	Compile(g, dir, `weight > 3.0 ? "continue" : "follow"`, `weight + edge`)
package celpolicy

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/traversal"
)

// Sentinel errors.
var (
	// ErrCompile wraps CEL parse and type-check failures.
	ErrCompile = errors.New("celpolicy: compile error")

	// ErrResultType indicates an expression of the wrong result type.
	ErrResultType = errors.New("celpolicy: unexpected result type")

	// ErrEval wraps evaluation failures seen during a traversal.
	ErrEval = errors.New("celpolicy: evaluation error")
)

// Compiled holds the programs of one predicate/aggregator pair.
//
// Evaluation errors cannot travel through a Predicate, so the first one is
// kept and the walk is ended with Break. Callers check Err after the
// traversal.
type Compiled struct {
	view      core.View
	dir       core.Direction
	predicate cel.Program
	aggregate cel.Program // nil keeps weights at zero
	src       string

	mu  sync.Mutex
	err error
}

func newEnv(withEdge bool) (*cel.Env, error) {
	opts := []cel.EnvOption{
		cel.Variable("source", cel.IntType),
		cel.Variable("current", cel.IntType),
		cel.Variable("weight", cel.DoubleType),
		cel.Variable("source_id", cel.StringType),
		cel.Variable("current_id", cel.StringType),
	}
	if withEdge {
		opts = append(opts, cel.Variable("edge", cel.DoubleType))
	}

	return cel.NewEnv(opts...)
}

// compile type-checks expr and ensures its output is one of want (or dyn).
func compile(env *cel.Env, expr string, want ...*cel.Type) (cel.Program, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, issues.Err())
	}
	out := ast.OutputType()
	ok := out.IsExactType(cel.DynType)
	for _, w := range want {
		ok = ok || out.IsExactType(w)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q yields %s", ErrResultType, expr, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, err)
	}

	return prg, nil
}

// Compile builds a Compiled from a predicate and an optional aggregator
// expression over g. dir must match the direction of the walk the policy
// drives; it resolves the edge variable.
func Compile(g core.View, dir core.Direction, predicate, aggregator string) (*Compiled, error) {
	if strings.TrimSpace(predicate) == "" {
		return nil, fmt.Errorf("%w: empty predicate", ErrCompile)
	}
	predEnv, err := newEnv(false)
	if err != nil {
		return nil, err
	}
	c := &Compiled{view: g, dir: dir, src: predicate}
	if c.predicate, err = compile(predEnv, predicate, cel.BoolType, cel.StringType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(aggregator) == "" {
		return c, nil
	}
	aggEnv, err := newEnv(true)
	if err != nil {
		return nil, err
	}
	if c.aggregate, err = compile(aggEnv, aggregator, cel.DoubleType, cel.IntType); err != nil {
		return nil, err
	}

	return c, nil
}

// Err returns the first evaluation error, if any.
func (c *Compiled) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

func (c *Compiled) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

func (c *Compiled) vars(source, current int, weight float64) map[string]any {
	return map[string]any{
		"source":     int64(source),
		"current":    int64(current),
		"weight":     weight,
		"source_id":  c.view.ToOriginalNodeID(source),
		"current_id": c.view.ToOriginalNodeID(current),
	}
}

// Policy returns a traversal.Policy evaluating the compiled expressions.
func (c *Compiled) Policy() traversal.Policy {
	var agg traversal.Aggregator
	if c.aggregate != nil {
		agg = c.aggregator
	}
	p := traversal.Custom(c.decide, agg)
	p.Name = "cel"

	return p
}

func (c *Compiled) decide(source, current int, weight float64) traversal.Decision {
	out, _, err := c.predicate.Eval(c.vars(source, current, weight))
	if err != nil {
		c.fail(fmt.Errorf("%w: %q at node %d: %v", ErrEval, c.src, current, err))
		return traversal.Break
	}
	switch v := out.Value().(type) {
	case bool:
		if v {
			return traversal.Follow
		}
		return traversal.Continue
	case string:
		switch strings.ToLower(v) {
		case "follow":
			return traversal.Follow
		case "break":
			return traversal.Break
		case "continue":
			return traversal.Continue
		}
	}
	c.fail(fmt.Errorf("%w: predicate returned %v", ErrResultType, out.Value()))

	return traversal.Break
}

func (c *Compiled) aggregator(source, current int, weight float64) float64 {
	vars := c.vars(source, current, weight)
	vars["edge"] = core.WeightAlong(c.view, source, current, c.dir)
	out, _, err := c.aggregate.Eval(vars)
	if err != nil {
		c.fail(fmt.Errorf("%w: aggregator at node %d: %v", ErrEval, current, err))
		return weight
	}
	switch v := out.Value().(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		c.fail(fmt.Errorf("%w: aggregator returned %v", ErrResultType, out.Value()))
		return weight
	}
}
