package formguard

import (
	"fmt"
	"strings"
)

// RuleToken is one parsed element of a rule spec: a rule name plus an
// optional parameter ("max:50" parses to {Name: "max", Param: "50"}).
type RuleToken struct {
	Name     string
	Param    string
	HasParam bool
}

// ParseRules normalizes any accepted rule-spec form into an ordered token
// sequence. Accepted forms are a pipe-delimited string ("required|max:50"),
// a pre-split []string of "rule" or "rule:param" elements, and an already
// parsed []RuleToken, which is returned as-is. Any other type is a schema
// mistake and reported as a configuration error.
func ParseRules(spec any) ([]RuleToken, error) {
	switch s := spec.(type) {
	case string:
		return parseRuleSpec(s), nil
	case []string:
		return parseRuleList(s), nil
	case []RuleToken:
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unsupported rule spec type %T", ErrInvalidSchema, spec)
	}
}

func parseRuleSpec(raw string) []RuleToken {
	return parseRuleList(strings.Split(raw, "|"))
}

// parseRuleList splits each element on the first colon only; parameters may
// contain further colons and are never re-split. Malformed elements (empty
// rule name, trailing pipe) become degenerate tokens that the dispatch stage
// rejects as unknown rules.
func parseRuleList(parts []string) []RuleToken {
	tokens := make([]RuleToken, 0, len(parts))
	for _, part := range parts {
		name, param, found := strings.Cut(part, ":")
		tokens = append(tokens, RuleToken{Name: name, Param: param, HasParam: found})
	}
	return tokens
}

func hasRule(tokens []RuleToken, name string) bool {
	for _, tok := range tokens {
		if tok.Name == name {
			return true
		}
	}
	return false
}
