// Package export emits program views as solver interchange text. The
// writers consume only the read-only view surface plus the naming
// resolution chain; they need no other core internals.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/naming"
)

// LPSanitize rewrites a resolved name into the CPLEX-LP character set.
// It is also usable directly as a per-format namer building block.
func LPSanitize(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '!', r == '#', r == '$', r == '%', r == '&':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s[0] >= '0' && s[0] <= '9' || s[0] == '.' {
		return "_" + s
	}
	return s
}

// WriteLP emits the view as CPLEX-LP text. Names resolve through the
// naming chain under the LP format tag and are then sanitized for the LP
// character set. A nil resolver falls through to the program's own namers.
func WriteLP(w io.Writer, view mp.View, resolver *naming.Resolver) error {
	if resolver == nil {
		resolver = naming.NewResolver()
	}
	varName := func(v mp.Variable) string {
		return LPSanitize(resolver.VariableName(view, naming.FormatLP, v))
	}

	obj := view.Objective()
	header := "Maximize"
	if obj.Sense() == mp.Min {
		header = "Minimize"
	}
	if _, err := fmt.Fprintf(w, "\\ %s\n%s\n", view.Name(), header); err != nil {
		return err
	}
	if obj.IsZero() {
		if _, err := fmt.Fprintf(w, " obj: 0\n"); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, " obj: %s\n", renderSum(obj.Function(), varName)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Subject To"); err != nil {
		return err
	}
	for i, c := range view.Constraints() {
		label := LPSanitize(resolver.ConstraintName(view, naming.FormatLP, c))
		if label == "_" {
			label = fmt.Sprintf("c%d", i+1)
		}
		if _, err := fmt.Fprintf(w, " %s: %s %s %s\n", label, renderSum(c.LHS(), varName), c.Operator(), formatNum(c.RHS())); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "Bounds"); err != nil {
		return err
	}
	var generals, binaries []string
	for _, v := range view.Variables() {
		name := varName(v)
		switch view.KindOf(v) {
		case mp.BoolKind:
			binaries = append(binaries, name)
			continue
		case mp.IntKind:
			generals = append(generals, name)
		}
		b := v.Bounds()
		switch {
		case math.IsInf(b.Lower(), -1) && math.IsInf(b.Upper(), 1):
			if _, err := fmt.Fprintf(w, " %s free\n", name); err != nil {
				return err
			}
		case math.IsInf(b.Upper(), 1):
			if _, err := fmt.Fprintf(w, " %s >= %s\n", name, formatNum(b.Lower())); err != nil {
				return err
			}
		case math.IsInf(b.Lower(), -1):
			if _, err := fmt.Fprintf(w, " %s <= %s\n", name, formatNum(b.Upper())); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, " %s <= %s <= %s\n", formatNum(b.Lower()), name, formatNum(b.Upper())); err != nil {
				return err
			}
		}
	}
	if len(generals) > 0 {
		if _, err := fmt.Fprintf(w, "Generals\n %s\n", strings.Join(generals, " ")); err != nil {
			return err
		}
	}
	if len(binaries) > 0 {
		if _, err := fmt.Fprintf(w, "Binaries\n %s\n", strings.Join(binaries, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "End")
	return err
}

func renderSum(s mp.SumTerms, varName func(mp.Variable) string) string {
	terms := s.Terms()
	parts := make([]string, 0, len(terms))
	for i, t := range terms {
		coef := t.Coefficient()
		sign := "+"
		if coef < 0 {
			sign = "-"
			coef = -coef
		}
		var piece string
		if coef == 1 {
			piece = varName(t.Variable())
		} else {
			piece = fmt.Sprintf("%s %s", formatNum(coef), varName(t.Variable()))
		}
		if i == 0 {
			if sign == "-" {
				piece = "- " + piece
			}
			parts = append(parts, piece)
			continue
		}
		parts = append(parts, sign+" "+piece)
	}
	return strings.Join(parts, " ")
}

func formatNum(v float64) string {
	return fmt.Sprintf("%g", v)
}
