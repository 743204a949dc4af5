package formguard

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

// Validator applies one Schema to input maps. It owns a scratch error
// collection that is reset at the start of every run, so a single instance
// must not be shared across concurrent Validate calls; use one instance per
// concurrent validation.
type Validator struct {
	schema *Schema
	log    *slog.Logger
	errors ErrorCollection
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger enables debug-level tracing of failed rules and run verdicts.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		v.log = log
	}
}

// New creates a Validator for the given schema.
func New(schema *Schema, opts ...Option) *Validator {
	v := &Validator{
		schema: schema,
		errors: NewErrorCollection(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks data against the schema and returns true iff no field
// recorded a message. A non-nil error means the schema itself is broken
// (unknown rule, unknown named list, malformed parameter) and the run was
// aborted; the verdict is meaningless in that case.
//
// Calling Validate again resets the error collection; results are never
// merged across runs.
func (v *Validator) Validate(data map[string]any) (bool, error) {
	v.errors = NewErrorCollection()

	for _, fr := range v.schema.Rules {
		tokens := fr.tokens()

		value, present := data[fr.Field]
		if !present {
			value = absent
		}

		// Optional-field policy: a field that is not required and has no
		// content is skipped entirely, other rules included.
		if !hasRule(tokens, "required") && isEmpty(value) {
			continue
		}

		value = sanitizeValue(value)

		for _, tok := range tokens {
			handler, ok := ruleTable[tok.Name]
			if !ok {
				return false, v.abort(fmt.Errorf("%w: %q", ErrUnknownRule, tok.Name))
			}
			if err := handler(v, fr.Field, value, tok); err != nil {
				return false, v.abort(err)
			}
		}
	}

	verdict := v.errors.IsEmpty()
	if v.log != nil {
		v.log.Debug("validation finished",
			slog.Bool("passed", verdict),
			slog.Int("failed_fields", len(v.errors)),
		)
	}
	return verdict, nil
}

// Errors returns the collection produced by the most recent Validate call.
func (v *Validator) Errors() ErrorCollection {
	return v.errors
}

// abort discards any messages collected before a configuration failure, so
// Errors() never exposes a partial run.
func (v *Validator) abort(err error) error {
	v.errors = NewErrorCollection()
	if v.log != nil {
		v.log.Debug("validation aborted", slog.String("error", err.Error()))
	}
	return err
}

func (v *Validator) fail(field, message string) {
	v.errors.Add(field, message)
	if v.log != nil {
		v.log.Debug("rule failed",
			slog.String("field", field),
			slog.String("message", message),
		)
	}
}

// sanitizeValue HTML-escapes scalar values before any rule runs, so values
// flowing into later business logic or message interpolation carry no
// markup. File records are not escaped as a whole; only the client-supplied
// name is, on a copy so the caller's record stays untouched.
func sanitizeValue(value any) any {
	switch t := value.(type) {
	case string:
		return sanitizer.EscapeHTML(t)
	case *FileInput:
		if t == nil {
			return t
		}
		clean := *t
		clean.Name = sanitizer.EscapeHTML(sanitizer.Filename(clean.Name))
		return &clean
	default:
		return value
	}
}
