package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ErrBadValue marks a declaration value that looks numeric or color-like
// but does not parse. These are rejected here rather than coerced to zero,
// so that a typo like `width: 10pxx` fails loudly instead of collapsing
// the box.
var ErrBadValue = errors.New("css: malformed value")

// ErrBadSelector marks a selector that is syntactically broken (as opposed
// to one using unsupported-but-valid syntax, which is skipped).
var ErrBadSelector = errors.New("css: malformed selector")

// Parse parses stylesheet text into the typed rule model. The heavy
// lifting of splitting rules and declarations is douceur's; this package
// lexes the selector strings and declaration values it leaves as strings.
//
// At-rules and rules whose selectors all use unsupported syntax
// (combinators, attribute selectors, pseudo-classes) are dropped.
func Parse(src string) (*Stylesheet, error) {
	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("css: parse: %w", err)
	}

	sheet := &Stylesheet{}
	for _, raw := range parsed.Rules {
		if raw.Kind != douceur.QualifiedRule {
			continue
		}
		rule, ok, err := convertRule(raw)
		if err != nil {
			return nil, err
		}
		if ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	return sheet, nil
}

func convertRule(raw *douceur.Rule) (Rule, bool, error) {
	var rule Rule
	for _, sel := range raw.Selectors {
		selector, supported, err := parseSelector(sel)
		if err != nil {
			return Rule{}, false, err
		}
		if supported {
			rule.Selectors = append(rule.Selectors, selector)
		}
	}
	if len(rule.Selectors) == 0 {
		return Rule{}, false, nil
	}

	for _, decl := range raw.Declarations {
		expanded, err := expandDeclaration(decl.Property, decl.Value)
		if err != nil {
			return Rule{}, false, err
		}
		rule.Declarations = append(rule.Declarations, expanded...)
	}
	return rule, true, nil
}

// parseSelector lexes a simple selector: [tag | *] (#id | .class)*.
func parseSelector(s string) (Selector, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, false, fmt.Errorf("%w: empty selector", ErrBadSelector)
	}
	if strings.ContainsAny(s, " \t>+~:[()") {
		// Valid CSS this engine does not match (combinators, pseudos, ...).
		return Selector{}, false, nil
	}

	var sel Selector
	i := 0
	if s[0] != '#' && s[0] != '.' {
		start := i
		for i < len(s) && s[i] != '#' && s[i] != '.' {
			i++
		}
		tag := s[start:i]
		if tag != "*" {
			if !isIdent(tag) {
				return Selector{}, false, fmt.Errorf("%w: %q", ErrBadSelector, s)
			}
			sel.TagName = tag
		}
	}
	for i < len(s) {
		marker := s[i]
		i++
		start := i
		for i < len(s) && s[i] != '#' && s[i] != '.' {
			i++
		}
		name := s[start:i]
		if !isIdent(name) {
			return Selector{}, false, fmt.Errorf("%w: %q", ErrBadSelector, s)
		}
		switch marker {
		case '#':
			sel.ID = name
		case '.':
			sel.Classes = append(sel.Classes, name)
		}
	}
	return sel, true, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// expandDeclaration turns one source declaration into typed declarations,
// expanding the multi-value shorthands the lookup chain cannot express.
// Single-value `margin`, `padding` and `border-width` shorthands stay
// under their shorthand key; the per-side lookup falls back to them.
func expandDeclaration(property, value string) ([]Declaration, error) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)

	switch property {
	case "margin", "padding", "border-width":
		fields := strings.Fields(value)
		if len(fields) <= 1 {
			break
		}
		return expandEdges(property, fields)
	case "border":
		return expandBorder(value)
	}

	v, err := ParseValue(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", property, err)
	}
	return []Declaration{{Property: property, Value: v}}, nil
}

// expandEdges applies the 2/3/4-value edge shorthand order
// (top, right, bottom, left).
func expandEdges(property string, fields []string) ([]Declaration, error) {
	values := make([]Value, len(fields))
	for i, f := range fields {
		v, err := ParseValue(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", property, err)
		}
		values[i] = v
	}

	var top, right, bottom, left Value
	switch len(values) {
	case 2:
		top, bottom = values[0], values[0]
		right, left = values[1], values[1]
	case 3:
		top = values[0]
		right, left = values[1], values[1]
		bottom = values[2]
	case 4:
		top, right, bottom, left = values[0], values[1], values[2], values[3]
	default:
		return nil, fmt.Errorf("%s: %w: %d values", property, ErrBadValue, len(values))
	}

	prefix, suffix := property, ""
	if property == "border-width" {
		prefix, suffix = "border", "-width"
	}
	return []Declaration{
		{Property: prefix + "-top" + suffix, Value: top},
		{Property: prefix + "-right" + suffix, Value: right},
		{Property: prefix + "-bottom" + suffix, Value: bottom},
		{Property: prefix + "-left" + suffix, Value: left},
	}, nil
}

// expandBorder splits `border: <width> <style> <color>` (any order) into
// border-width, border-style and border-color.
func expandBorder(value string) ([]Declaration, error) {
	var decls []Declaration
	for _, field := range strings.Fields(value) {
		v, err := ParseValue(field)
		if err != nil {
			return nil, fmt.Errorf("border: %w", err)
		}
		switch v.Kind {
		case KindLength:
			decls = append(decls, Declaration{Property: "border-width", Value: v})
		case KindColor:
			decls = append(decls, Declaration{Property: "border-color", Value: v})
		default:
			decls = append(decls, Declaration{Property: "border-style", Value: v})
		}
	}
	return decls, nil
}

// ParseValue lexes a single value token into a Value. Numeric-looking
// input must be a px length (a bare 0 is allowed); '#'-prefixed input must
// be a valid hex color. Everything else is a keyword.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty value", ErrBadValue)
	}
	if c, ok := ParseColor(s); ok {
		return ColorValue(c), nil
	}
	if s[0] == '#' {
		return Value{}, fmt.Errorf("%w: bad color %q", ErrBadValue, s)
	}
	if c := s[0]; c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9') {
		return parseLength(s)
	}
	return Keyword(s), nil
}

func parseLength(s string) (Value, error) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || (i == 0 && (c == '+' || c == '-')) {
			i++
			continue
		}
		break
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: bad number %q", ErrBadValue, s)
	}
	switch unit := s[i:]; unit {
	case "px":
		return Length(n), nil
	case "":
		// Unitless zero is legal CSS; any other unitless number is not.
		if n == 0 {
			return Length(0), nil
		}
		return Value{}, fmt.Errorf("%w: missing unit in %q", ErrBadValue, s)
	default:
		return Value{}, fmt.Errorf("%w: unsupported unit %q", ErrBadValue, s)
	}
}
