package formguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard"
)

// checkField runs a single-field schema against one value and returns the
// verdict and the field's messages.
func checkField(t *testing.T, spec string, value any) (bool, []string) {
	t.Helper()
	v := formguard.New(&formguard.Schema{Rules: []formguard.FieldRules{
		{Field: "f", Spec: spec},
	}})
	ok, err := v.Validate(map[string]any{"f": value})
	require.NoError(t, err)
	return ok, v.Errors().All("f")
}

func TestStringRule(t *testing.T) {
	t.Run("passes for strings", func(t *testing.T) {
		ok, _ := checkField(t, "required|string", "hello")
		assert.True(t, ok)
	})

	t.Run("fails for non-textual values", func(t *testing.T) {
		ok, msgs := checkField(t, "required|string", 42)
		assert.False(t, ok)
		assert.Equal(t, []string{"must be a string"}, msgs)
	})
}

func TestMinMaxRules(t *testing.T) {
	t.Run("numeric value within range passes", func(t *testing.T) {
		ok, _ := checkField(t, "required|min:18|max:80", 19)
		assert.True(t, ok)
	})

	t.Run("short string fails length branch", func(t *testing.T) {
		ok, msgs := checkField(t, "min:4", "Dav")
		assert.False(t, ok)
		assert.Equal(t, []string{"must be at least 4 characters long"}, msgs)
	})

	t.Run("small number fails magnitude branch", func(t *testing.T) {
		ok, msgs := checkField(t, "min:18", 5)
		assert.False(t, ok)
		assert.Equal(t, []string{"must be at least 18"}, msgs)
	})

	t.Run("numeric-looking string compares as magnitude", func(t *testing.T) {
		// "25" is two characters but min:10 applies the numeric branch.
		ok, _ := checkField(t, "min:10", "25")
		assert.True(t, ok)

		ok, msgs := checkField(t, "max:10", "25")
		assert.False(t, ok)
		assert.Equal(t, []string{"must be at most 10"}, msgs)
	})

	t.Run("long string fails max length branch", func(t *testing.T) {
		ok, msgs := checkField(t, "max:5", "abcdefgh")
		assert.False(t, ok)
		assert.Equal(t, []string{"must be at most 5 characters long"}, msgs)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		// "héllo" is five runes but six bytes.
		ok, _ := checkField(t, "max:5", "héllo")
		assert.True(t, ok)
	})

	t.Run("min truncates the value before comparing but max does not", func(t *testing.T) {
		// 17.9 truncates to 17 under min:18 and fails.
		ok, _ := checkField(t, "min:18", 17.9)
		assert.False(t, ok)

		// 18.5 exceeds max:18 untruncated and fails.
		ok, _ = checkField(t, "max:18", 18.5)
		assert.False(t, ok)

		// 18.9 truncates to 18 under min:18 and passes.
		ok, _ = checkField(t, "min:18", 18.9)
		assert.True(t, ok)
	})

	t.Run("non-finite float literals are not numeric-looking", func(t *testing.T) {
		// NaN compares false against every bound, so a "nan" string must
		// never reach the numeric branch where it would satisfy
		// contradictory limits.
		ok, msgs := checkField(t, "required|min:4|max:2", "nan")
		assert.False(t, ok)
		assert.Equal(t, []string{
			"must be at least 4 characters long",
			"must be at most 2 characters long",
		}, msgs)

		for _, value := range []string{"NaN", "inf", "-Inf", "0x1p4", "1_000"} {
			ok, msgs := checkField(t, "required|numeric", value)
			assert.False(t, ok, "value %q", value)
			assert.Contains(t, msgs, "must be a number")
		}
	})

	t.Run("scientific notation still counts as numeric", func(t *testing.T) {
		ok, _ := checkField(t, "required|max:2000", "1e3")
		assert.True(t, ok)
	})

	t.Run("malformed limit is a configuration error", func(t *testing.T) {
		v := formguard.New(&formguard.Schema{Rules: []formguard.FieldRules{
			{Field: "f", Spec: "min:abc"},
		}})
		_, err := v.Validate(map[string]any{"f": "value"})
		assert.ErrorIs(t, err, formguard.ErrInvalidSchema)
	})
}

func TestIntegerRule(t *testing.T) {
	t.Run("accepts integer values and digit strings", func(t *testing.T) {
		for _, value := range []any{42, int64(7), "123", "-5"} {
			ok, _ := checkField(t, "required|integer", value)
			assert.True(t, ok, "value %v", value)
		}
	})

	t.Run("rejects non-integer content", func(t *testing.T) {
		for _, value := range []any{"12.5", " 12", "12 ", "abc", "1e3", 3.14} {
			ok, msgs := checkField(t, "required|integer", value)
			assert.False(t, ok, "value %v", value)
			assert.Contains(t, msgs, "must be an integer")
		}
	})

	t.Run("accepts whole floats", func(t *testing.T) {
		ok, _ := checkField(t, "required|integer", 5.0)
		assert.True(t, ok)
	})
}

func TestNumericRule(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		for _, value := range []any{5, 3.14, "12.5", "-7"} {
			ok, _ := checkField(t, "required|numeric", value)
			assert.True(t, ok, "value %v", value)
		}
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		ok, msgs := checkField(t, "required|numeric", "12abc")
		assert.False(t, ok)
		assert.Equal(t, []string{"must be a number"}, msgs)
	})
}

func TestEmailRule(t *testing.T) {
	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, value := range []string{
			"test@example.com",
			"user.name+tag@sub.example.org",
		} {
			ok, _ := checkField(t, "required|email", value)
			assert.True(t, ok, "value %q", value)
		}
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		for _, value := range []string{
			"not-an-email",
			"@example.com",
			"user@",
			"user@localhost",
			"user@.example.com",
			"user@example..com",
		} {
			ok, msgs := checkField(t, "required|email", value)
			assert.False(t, ok, "value %q", value)
			assert.Contains(t, msgs, "must be a valid email address")
		}
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		ok, _ := checkField(t, "required|email", 42)
		assert.False(t, ok)
	})
}

func TestBoolRule(t *testing.T) {
	t.Run("accepts boolean-ish tokens", func(t *testing.T) {
		for _, value := range []any{true, 1, "1", "true", "false", "on", "off"} {
			ok, _ := checkField(t, "required|bool", value)
			assert.True(t, ok, "value %v", value)
		}
	})

	t.Run("zero tokens satisfy bool but trip required emptiness", func(t *testing.T) {
		// "0" is numeric zero, which counts as empty, so required fails —
		// but the bool rule itself records nothing.
		ok, msgs := checkField(t, "required|bool", "0")
		assert.False(t, ok)
		assert.Equal(t, []string{"field is required"}, msgs)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, value := range []any{"yes", "enabled", 2, "10", "TRUE", "On", "Off"} {
			ok, msgs := checkField(t, "required|bool", value)
			assert.False(t, ok, "value %v", value)
			assert.Contains(t, msgs, "must be a boolean value")
		}
	})
}

func TestInAndNotInRules(t *testing.T) {
	schema := &formguard.Schema{
		Rules: []formguard.FieldRules{
			{Field: "role", Spec: "required|in:valid_roles"},
			{Field: "username", Spec: "not_in:reserved_names"},
		},
		NamedLists: map[string][]string{
			"valid_roles":    {"admin", "editor", "viewer"},
			"reserved_names": {"root", "admin"},
		},
	}

	t.Run("member passes in", func(t *testing.T) {
		v := formguard.New(schema)
		ok, err := v.Validate(map[string]any{"role": "editor"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-member fails in", func(t *testing.T) {
		v := formguard.New(schema)
		ok, err := v.Validate(map[string]any{"role": "guest"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "must be one of: admin, editor, viewer", v.Errors().Get("role"))
	})

	t.Run("member fails not_in", func(t *testing.T) {
		v := formguard.New(schema)
		ok, err := v.Validate(map[string]any{"role": "admin", "username": "root"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "must not be one of: root, admin", v.Errors().Get("username"))
	})

	t.Run("non-string member compares by rendered value", func(t *testing.T) {
		v := formguard.New(&formguard.Schema{
			Rules: []formguard.FieldRules{
				{Field: "level", Spec: "required|in:levels"},
			},
			NamedLists: map[string][]string{"levels": {"1", "2", "3"}},
		})
		ok, err := v.Validate(map[string]any{"level": 2})
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAlphaRules(t *testing.T) {
	t.Run("alpha accepts letters only", func(t *testing.T) {
		ok, _ := checkField(t, "required|alpha", "Alice")
		assert.True(t, ok)

		ok, msgs := checkField(t, "required|alpha", "Alice7")
		assert.False(t, ok)
		assert.Equal(t, []string{"must contain only letters"}, msgs)
	})

	t.Run("alpha_num accepts letters and digits", func(t *testing.T) {
		ok, _ := checkField(t, "required|alpha_num", "Alice7")
		assert.True(t, ok)

		ok, msgs := checkField(t, "required|alpha_num", "Alice 7")
		assert.False(t, ok)
		assert.Equal(t, []string{"must contain only letters and numbers"}, msgs)
	})
}

func TestURLRule(t *testing.T) {
	t.Run("accepts http and https URLs", func(t *testing.T) {
		for _, value := range []string{"https://example.com", "http://example.com/path?q=1"} {
			ok, _ := checkField(t, "required|url", value)
			assert.True(t, ok, "value %q", value)
		}
	})

	t.Run("rejects other schemes and hostless strings", func(t *testing.T) {
		for _, value := range []string{"ftp://example.com", "example.com", "https://"} {
			ok, msgs := checkField(t, "required|url", value)
			assert.False(t, ok, "value %q", value)
			assert.Contains(t, msgs, "must be a valid URL")
		}
	})
}

func TestUUIDRule(t *testing.T) {
	t.Run("accepts canonical UUIDs", func(t *testing.T) {
		ok, _ := checkField(t, "required|uuid", "550e8400-e29b-41d4-a716-446655440000")
		assert.True(t, ok)
	})

	t.Run("rejects malformed UUIDs", func(t *testing.T) {
		for _, value := range []string{
			"550e8400e29b41d4a716446655440000",
			"550e8400-e29b-41d4-a716",
			"not-a-uuid-at-all-not-a-uuid-at-all-",
		} {
			ok, msgs := checkField(t, "required|uuid", value)
			assert.False(t, ok, "value %q", value)
			assert.Contains(t, msgs, "must be a valid UUID")
		}
	})
}
