package css

import "strings"

// Decl is a single property/value declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector with an ordered declaration block.
type Rule struct {
	Selector string
	Decls    []Decl
}

// String serializes the rule as "selector{prop:value;...}". Declarations are
// emitted in list order; serialization is a pure function of the rule.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteByte('{')
	b.WriteString(Serialize(r.Decls))
	b.WriteByte('}')
	return b.String()
}

// Serialize joins declarations as "prop:value;prop:value". Used both for
// rule output and as the interning key for class deduplication.
func Serialize(decls []Decl) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}
