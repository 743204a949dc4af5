package formguard

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ruleFunc applies one rule token to a field value. Validation failures are
// appended to the run's error collection; the returned error is reserved for
// configuration failures, which abort the whole run.
type ruleFunc func(v *Validator, field string, value any, tok RuleToken) error

// ruleTable is the dispatch table for rule names. Lookup is explicit: a name
// missing here is the "rule is not defined" configuration error.
var ruleTable = map[string]ruleFunc{
	"required":  ruleRequired,
	"string":    ruleString,
	"max":       ruleMax,
	"min":       ruleMin,
	"integer":   ruleInteger,
	"numeric":   ruleNumeric,
	"email":     ruleEmail,
	"in":        ruleIn,
	"not_in":    ruleNotIn,
	"file":      ruleFile,
	"mime":      ruleMime,
	"bool":      ruleBool,
	"alpha":     ruleAlpha,
	"alpha_num": ruleAlphaNum,
	"url":       ruleURL,
	"uuid":      ruleUUID,
}

var (
	// Alpha regex
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Alphanumeric regex
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

func ruleRequired(v *Validator, field string, value any, _ RuleToken) error {
	if isEmpty(value) {
		v.fail(field, "field is required")
	}
	return nil
}

func ruleString(v *Validator, field string, value any, _ RuleToken) error {
	if _, ok := value.(string); !ok {
		v.fail(field, "must be a string")
	}
	return nil
}

// numericParam parses the limit parameter of min/max. A malformed limit is a
// mistake in the rule table, not a data failure.
func numericParam(tok RuleToken) (float64, error) {
	limit, err := strconv.ParseFloat(tok.Param, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s rule needs a numeric parameter, got %q", ErrInvalidSchema, tok.Name, tok.Param)
	}
	return limit, nil
}

func ruleMax(v *Validator, field string, value any, tok RuleToken) error {
	limit, err := numericParam(tok)
	if err != nil {
		return err
	}
	if num, ok := numericValue(value); ok {
		if num > limit {
			v.fail(field, fmt.Sprintf("must be at most %s", tok.Param))
		}
		return nil
	}
	if s, ok := value.(string); ok && utf8.RuneCountInString(s) > int(limit) {
		v.fail(field, fmt.Sprintf("must be at most %d characters long", int(limit)))
	}
	return nil
}

func ruleMin(v *Validator, field string, value any, tok RuleToken) error {
	limit, err := numericParam(tok)
	if err != nil {
		return err
	}
	if num, ok := numericValue(value); ok {
		// The magnitude is truncated toward an integer before comparing;
		// max compares untruncated. Asymmetric on purpose.
		if math.Trunc(num) < limit {
			v.fail(field, fmt.Sprintf("must be at least %s", tok.Param))
		}
		return nil
	}
	if s, ok := value.(string); ok && utf8.RuneCountInString(s) < int(limit) {
		v.fail(field, fmt.Sprintf("must be at least %d characters long", int(limit)))
	}
	return nil
}

func ruleInteger(v *Validator, field string, value any, _ RuleToken) error {
	if !isIntegral(value) {
		v.fail(field, "must be an integer")
	}
	return nil
}

func ruleNumeric(v *Validator, field string, value any, _ RuleToken) error {
	if _, ok := numericValue(value); !ok {
		v.fail(field, "must be a number")
	}
	return nil
}

func ruleEmail(v *Validator, field string, value any, _ RuleToken) error {
	s, ok := value.(string)
	if !ok || !isEmail(s) {
		v.fail(field, "must be a valid email address")
	}
	return nil
}

// isEmail validates the local-part@domain grammar: Go's mail parser first,
// then the stricter checks typical web use expects.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func ruleIn(v *Validator, field string, value any, tok RuleToken) error {
	list, err := v.schema.namedList(tok.Param)
	if err != nil {
		return err
	}
	if !slices.Contains(list, displayString(value)) {
		v.fail(field, fmt.Sprintf("must be one of: %s", strings.Join(list, ", ")))
	}
	return nil
}

func ruleNotIn(v *Validator, field string, value any, tok RuleToken) error {
	list, err := v.schema.namedList(tok.Param)
	if err != nil {
		return err
	}
	if slices.Contains(list, displayString(value)) {
		v.fail(field, fmt.Sprintf("must not be one of: %s", strings.Join(list, ", ")))
	}
	return nil
}

func ruleFile(v *Validator, field string, value any, _ RuleToken) error {
	f, ok := value.(*FileInput)
	if !ok {
		v.fail(field, "must be an uploaded file")
		return nil
	}
	if !f.exists() {
		v.fail(field, "file was not uploaded")
	}
	return nil
}

func ruleMime(v *Validator, field string, value any, tok RuleToken) error {
	list, err := v.schema.namedList(tok.Param)
	if err != nil {
		return err
	}
	f, ok := value.(*FileInput)
	if !ok {
		v.fail(field, "must be an uploaded file")
		return nil
	}
	if !slices.Contains(list, f.MIMEType) {
		v.fail(field, fmt.Sprintf("file type must be one of: %s", strings.Join(list, ", ")))
		return nil
	}
	// Renamed-extension check: the name must carry the canonical extension
	// for the reported MIME type.
	ext, ok := canonicalExtension(f.MIMEType)
	if !ok || f.extension() != ext {
		v.fail(field, "file extension does not match its type")
	}
	return nil
}

func ruleBool(v *Validator, field string, value any, _ RuleToken) error {
	if !isBoolish(value) {
		v.fail(field, "must be a boolean value")
	}
	return nil
}

// isBoolish accepts exactly the boolean-ish token set: native bools, the
// numbers 0 and 1, and the literal strings "true", "false", "0", "1", "on",
// "off". Matching is case sensitive; "TRUE" is not a token.
func isBoolish(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		switch v {
		case "true", "false", "0", "1", "on", "off":
			return true
		}
		return false
	default:
		if n, ok := numericValue(v); ok {
			return n == 0 || n == 1
		}
		return false
	}
}

func ruleAlpha(v *Validator, field string, value any, _ RuleToken) error {
	s, ok := value.(string)
	if !ok || !alphaRegex.MatchString(s) {
		v.fail(field, "must contain only letters")
	}
	return nil
}

func ruleAlphaNum(v *Validator, field string, value any, _ RuleToken) error {
	s, ok := value.(string)
	if !ok || !alphanumericRegex.MatchString(s) {
		v.fail(field, "must contain only letters and numbers")
	}
	return nil
}

func ruleURL(v *Validator, field string, value any, _ RuleToken) error {
	s, ok := value.(string)
	if !ok || !isURL(s) {
		v.fail(field, "must be a valid URL")
	}
	return nil
}

func isURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func ruleUUID(v *Validator, field string, value any, _ RuleToken) error {
	s, ok := value.(string)
	if !ok || !isUUID(s) {
		v.fail(field, "must be a valid UUID")
	}
	return nil
}

// isUUID checks canonical UUID format with pre-validation to avoid expensive
// parsing.
func isUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
