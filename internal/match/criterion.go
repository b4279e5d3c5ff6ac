package match

import (
	"fmt"
	"regexp"
)

// Criterion decides whether an entry name is selected. Exactly one matching
// mode is active: a non-empty term wins over the regex, and an empty regex
// falls back to matching everything.
type Criterion struct {
	re *regexp.Regexp
}

// NewCriterion compiles the selection criterion. The term is escaped and
// wrapped so it behaves as a plain substring; the regex is compiled as given.
// A pattern that does not compile is a configuration error and must abort the
// run before any archive is touched.
func NewCriterion(term, pattern string) (*Criterion, error) {
	switch {
	case term != "":
		pattern = ".*" + regexp.QuoteMeta(term) + ".*"
	case pattern == "":
		pattern = ".*"
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid selection pattern %q: %w", pattern, err)
	}

	return &Criterion{re: re}, nil
}

// Match reports whether the entry name satisfies the criterion. Matching is
// case-sensitive and unanchored; a match anywhere in the name counts.
func (c *Criterion) Match(name string) bool {
	return c.re.MatchString(name)
}
