// Package style matches cascading rules against document elements and
// builds the styled shadow tree the layout engine consumes.
package style

import (
	"sort"

	"crusoe/pkg/css"
	"crusoe/pkg/dom"
)

// PropertyMap maps property names to their resolved values. Built once per
// style node and never mutated afterwards.
type PropertyMap map[string]css.Value

type matchedRule struct {
	specificity css.Specificity
	rule        *css.Rule
}

// Specified computes the specified values for one element: collect every
// matching rule from every stylesheet, sort by specificity ascending, then
// apply declarations in order so the most specific (and, on ties, the
// later-declared) rule wins.
func Specified(elem *dom.Node, stylesheets []*css.Stylesheet) PropertyMap {
	values := make(PropertyMap)
	if elem.Type != dom.ElementNode {
		return values
	}

	var matches []matchedRule
	for _, sheet := range stylesheets {
		matches = append(matches, matchingRules(elem, sheet)...)
	}

	// Stable keeps encounter order (stylesheet order, then rule order)
	// as the tie-breaker at equal specificity.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})

	for _, m := range matches {
		for _, decl := range m.rule.Declarations {
			values[decl.Property] = decl.Value
		}
	}
	return values
}

// matchingRules does a linear scan of the stylesheet. Fine for small
// documents; an index by tag/id/class would speed this up without
// changing behavior.
func matchingRules(elem *dom.Node, sheet *css.Stylesheet) []matchedRule {
	var matches []matchedRule
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		if spec, ok := matchRule(elem, rule); ok {
			matches = append(matches, matchedRule{spec, rule})
		}
	}
	return matches
}

// matchRule reports whether any of the rule's selectors matches, with the
// specificity of the first one that does.
func matchRule(elem *dom.Node, rule *css.Rule) (css.Specificity, bool) {
	for _, sel := range rule.Selectors {
		if Matches(elem, sel) {
			return sel.Specificity(), true
		}
	}
	return css.Specificity{}, false
}

// Matches reports whether a simple selector matches an element: every
// present part (tag, id, classes) must hold.
func Matches(elem *dom.Node, sel css.Selector) bool {
	if elem.Type != dom.ElementNode {
		return false
	}
	if sel.TagName != "" && sel.TagName != elem.TagName {
		return false
	}
	if sel.ID != "" && sel.ID != elem.ID() {
		return false
	}
	if len(sel.Classes) > 0 {
		classes := elem.Classes()
		for _, c := range sel.Classes {
			if !classes[c] {
				return false
			}
		}
	}
	return true
}
