package css

import "strings"

// Sheet is an ordered, deduplicating rule collection. Rules are kept in
// first-insertion order so emitting a sheet is deterministic; inserting a
// selector twice keeps the first rule.
type Sheet struct {
	rules []Rule
	seen  map[string]bool
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{seen: make(map[string]bool)}
}

// Add inserts a rule unless its selector is already present. It reports
// whether the rule was inserted.
func (s *Sheet) Add(r Rule) bool {
	if s.seen[r.Selector] {
		return false
	}
	s.seen[r.Selector] = true
	s.rules = append(s.rules, r)
	return true
}

// Len returns the number of rules in the sheet.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in insertion order. The returned slice is shared;
// callers must not mutate it.
func (s *Sheet) Rules() []Rule {
	return s.rules
}

// String serializes the whole sheet, one rule per line, in insertion order.
func (s *Sheet) String() string {
	var b strings.Builder
	for i, r := range s.rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	return b.String()
}
