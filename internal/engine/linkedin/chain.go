package linkedin

import "github.com/PuerkitoBio/goquery"

// Rule pairs a CSS selector with the validator its text must pass.
// An empty Selector matches the scope itself.
type Rule struct {
	Selector string
	Validate Validator
}

// Chain is an ordered list of rules tried until one yields a valid value.
type Chain []Rule

// Resolve returns the text of the first element, across rules in order,
// whose value passes that rule's validator. Returns "" when nothing validates.
func (c Chain) Resolve(scope *goquery.Selection) string {
	return c.ResolveWith(scope, nil)
}

// ResolveWith is Resolve with an extra validator every value must also pass.
func (c Chain) ResolveWith(scope *goquery.Selection, extra Validator) string {
	if scope == nil {
		return ""
	}
	for _, r := range c {
		matches := scope
		if r.Selector != "" {
			matches = scope.Find(r.Selector)
		}
		for _, n := range matches.Nodes {
			v := nodeText(n)
			if v == "" {
				continue
			}
			if r.Validate != nil && !r.Validate(v) {
				continue
			}
			if extra != nil && !extra(v) {
				continue
			}
			return v
		}
	}
	return ""
}

// rules builds a chain where every selector shares one validator.
func rules(v Validator, selectors ...string) Chain {
	c := make(Chain, len(selectors))
	for i, s := range selectors {
		c[i] = Rule{Selector: s, Validate: v}
	}
	return c
}
