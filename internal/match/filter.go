package match

import (
	"fmt"

	"github.com/woozymasta/pathrules"
)

// Filter combines the selection criterion with optional gitignore-style
// include/exclude rules applied to entry names after the criterion.
type Filter struct {
	criterion *Criterion
	rules     *pathrules.Matcher
}

// NewFilter compiles the criterion and the rule set. Invalid rule patterns
// are configuration errors, same as an invalid regex.
func NewFilter(term, pattern string, include, exclude []string) (*Filter, error) {
	criterion, err := NewCriterion(term, pattern)
	if err != nil {
		return nil, err
	}

	rules, err := compileRules(include, exclude)
	if err != nil {
		return nil, err
	}

	return &Filter{
		criterion: criterion,
		rules:     rules,
	}, nil
}

// Match reports whether the entry name is selected
func (f *Filter) Match(name string) bool {
	if !f.criterion.Match(name) {
		return false
	}
	if f.rules != nil {
		return f.rules.Included(name, false)
	}
	return true
}

// compileRules builds a pathrules matcher from raw patterns. With include
// rules present the default flips to exclude, so includes behave as an
// allow-list; exclude-only rule sets keep everything not excluded.
func compileRules(include, exclude []string) (*pathrules.Matcher, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	rules := make([]pathrules.Rule, 0, len(include)+len(exclude))
	for _, pattern := range include {
		rules = append(rules, pathrules.Rule{Action: pathrules.ActionInclude, Pattern: pattern})
	}
	for _, pattern := range exclude {
		rules = append(rules, pathrules.Rule{Action: pathrules.ActionExclude, Pattern: pattern})
	}

	defaultAction := pathrules.ActionInclude
	if len(include) > 0 {
		defaultAction = pathrules.ActionExclude
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		DefaultAction: defaultAction,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid entry rules: %w", err)
	}

	return matcher, nil
}
