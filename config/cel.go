package config

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Vars holds the per-slide values a condition expression can
// reference.
type Vars struct {
	Index         int
	Title         string
	HasImage      bool
	ContentLength int
	Bullets       int
}

// Condition is one compiled layout override rule. Conditions are
// evaluated in order; the first match wins.
type Condition struct {
	prg    cel.Program
	layout string
	skip   bool
}

// Layout returns the layout name this condition applies, which may be
// empty when the condition only skips.
func (c *Condition) Layout() string {
	return c.layout
}

// Skip reports whether a matching slide is excluded from the export.
func (c *Condition) Skip() bool {
	return c.skip
}

// Match evaluates the condition against one slide.
func (c *Condition) Match(vars Vars) (bool, error) {
	out, _, err := c.prg.Eval(map[string]any{
		"index":         vars.Index,
		"title":         vars.Title,
		"hasImage":      vars.HasImage,
		"contentLength": vars.ContentLength,
		"bullets":       vars.Bullets,
	})
	if err != nil {
		return false, fmt.Errorf("condition evaluation error for '%s': %w", c.layout, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition did not evaluate to a boolean")
	}
	return b, nil
}

// CompileConditions compiles the configured default conditions into
// evaluable programs. An invalid expression fails the whole load so a
// typo cannot silently disable a rule.
func CompileConditions(defs []DefaultCondition) ([]*Condition, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("index", cel.IntType),
		cel.Variable("title", cel.StringType),
		cel.Variable("hasImage", cel.BoolType),
		cel.Variable("contentLength", cel.IntType),
		cel.Variable("bullets", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create condition environment: %w", err)
	}
	var conditions []*Condition
	for _, d := range defs {
		ast, issues := env.Compile(d.If)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("condition compilation error for '%s': %w", d.If, issues.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("condition program creation error for '%s': %w", d.If, err)
		}
		skip := d.Skip != nil && *d.Skip
		conditions = append(conditions, &Condition{prg: prg, layout: d.Layout, skip: skip})
	}
	return conditions, nil
}
