// Package formguard is a declarative field-validation engine: given a map of
// field names to raw values and a schema mapping fields to pipe-delimited
// rule strings, it reports a pass/fail verdict and collects human-readable,
// field-scoped error messages.
//
// # Usage
//
//	schema := &formguard.Schema{
//		Rules: []formguard.FieldRules{
//			{Field: "name", Spec: "required|string|max:50"},
//			{Field: "age", Spec: "required|integer|min:18|max:80"},
//			{Field: "role", Spec: "in:valid_roles"},
//		},
//		NamedLists: map[string][]string{
//			"valid_roles": {"admin", "editor", "viewer"},
//		},
//	}
//
//	v := formguard.New(schema)
//	ok, err := v.Validate(map[string]any{"name": "Alice", "age": 19})
//	if err != nil {
//		// the schema references an unknown rule or list; fix the schema
//	}
//	if !ok {
//		for _, field := range v.Errors().Fields() {
//			// v.Errors().All(field) holds the messages in rule order
//		}
//	}
//
// # Rule language
//
// A rule spec is a pipe-delimited string; each element is a rule name with
// an optional colon-separated parameter. Rules run in written order and all
// failures for a field are collected, not just the first.
//
// Fields without a "required" rule are optional: when the value is empty
// (absent, empty string, numeric zero, false), every rule for that field is
// skipped and no error is recorded.
//
// The in, not_in, and mime parameters are not literal lists — they name an
// allow-list declared in Schema.NamedLists, resolved at rule-application
// time.
//
// # Error classes
//
// Validation failures are collected per field in an ErrorCollection and
// never stop the run. Configuration failures — a rule spec referencing a
// rule or named list that does not exist — abort the run with a non-nil
// error wrapping ErrUnknownRule or ErrUnknownList; they signal a mistake in
// the schema, not in the input.
//
// # Concurrency
//
// A Schema is plain data and can be shared read-only. A Validator holds the
// scratch error collection of its most recent run and must not be shared
// across concurrent Validate calls; create one Validator per concurrent
// validation.
package formguard
