package naming

import (
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
	"github.com/blang/semver/v4"
	"github.com/tidwall/gjson"

	"github.com/optomata/gomp/pkg/mp"
)

// helperEnv carries the helper functions available to every namer
// expression.
func helperEnv() map[string]interface{} {
	return map[string]interface{}{
		"InSemverRange": func(version string, versionRange string) (bool, error) {
			ver, err := semver.Parse(version)
			if err != nil {
				return false, err
			}
			rng, err := semver.ParseRange(versionRange)
			if err != nil {
				return false, err
			}
			return rng(ver), nil
		},
		"SemverCompare": func(versionOne string, versionTwo string) (int, error) {
			v1, err := semver.Parse(versionOne)
			if err != nil {
				return 0, err
			}
			v2, err := semver.Parse(versionTwo)
			if err != nil {
				return 0, err
			}
			return v1.Compare(v2), nil
		},
		"JSONPath": func(obj string, path string) (string, error) {
			result := gjson.Get(obj, path)
			if !result.Exists() {
				return "", fmt.Errorf("object path (%s) not found for object: %s", path, obj)
			}
			return result.String(), nil
		},
	}
}

// CompileVariableNamer compiles an expression into a variable namer. The
// expression sees Name, Description, Refs (the reference values as a JSON
// array), Kind, Lower and Upper, plus the JSONPath, InSemverRange and
// SemverCompare helpers. A program that fails at evaluation, or evaluates
// to a non-string, resolves to the structural description.
func CompileVariableNamer(expression string) (mp.VariableNamer, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("variable namer %q: %w", expression, err)
	}
	return func(v mp.Variable) string {
		env := helperEnv()
		env["Name"] = v.Name()
		env["Description"] = v.Description()
		env["Refs"] = v.ReferencesJSON()
		env["Kind"] = v.Kind().String()
		env["Lower"] = v.Bounds().Lower()
		env["Upper"] = v.Bounds().Upper()
		return runNamer(program, env, v.Description())
	}, nil
}

// CompileConstraintNamer compiles an expression into a constraint namer.
// The expression sees Description, LHS, Operator and RHS, plus the same
// helpers as variable namer expressions.
func CompileConstraintNamer(expression string) (mp.ConstraintNamer, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("constraint namer %q: %w", expression, err)
	}
	return func(c mp.Constraint) string {
		env := helperEnv()
		env["Description"] = c.Description()
		env["LHS"] = c.LHS().String()
		env["Operator"] = c.Operator().String()
		env["RHS"] = c.RHS()
		return runNamer(program, env, c.String())
	}, nil
}

func runNamer(program *vm.Program, env map[string]interface{}, fallback string) string {
	output, err := expr.Run(program, env)
	if err != nil {
		return fallback
	}
	s, ok := output.(string)
	if !ok {
		return fallback
	}
	return s
}
