package formguard

import "fmt"

// FieldRules binds one field to its rule spec. Spec is the pipe-delimited
// form; List, when non-nil, is the pre-split form and takes precedence.
type FieldRules struct {
	Field string
	Spec  string
	List  []string
}

func (f FieldRules) tokens() []RuleToken {
	if f.List != nil {
		return parseRuleList(f.List)
	}
	return parseRuleSpec(f.Spec)
}

// Schema is a validation context: the ordered rule set plus the named
// allow-lists that in/not_in/mime parameters resolve against. A Schema is
// plain data — build one per form type with a factory function instead of
// subclassing anything. Fields are validated in the order they appear in
// Rules.
type Schema struct {
	Rules      []FieldRules
	NamedLists map[string][]string
}

// namedList resolves a rule parameter to a live list on the schema. The
// lookup happens at rule-application time, so swapping a list between runs
// changes the next run's outcome. A missing list is a configuration error.
func (s *Schema) namedList(name string) ([]string, error) {
	list, ok := s.NamedLists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	return list, nil
}
