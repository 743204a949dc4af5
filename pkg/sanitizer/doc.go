// Package sanitizer provides the string-cleanup helpers the validation
// engine injects between raw input and rule dispatch: HTML-entity escaping
// for scalar values and filename normalization for uploaded files.
//
// All helpers are pure functions over their input string; the package holds
// no state and is safe for concurrent use.
//
// # Usage
//
//	clean := sanitizer.EscapeHTML(userInput)
//	name := sanitizer.Filename(upload.Name)
//
// EscapeHTML is intentionally conservative: it escapes rather than strips,
// so the validated value keeps a faithful (if encoded) representation of
// what the user sent. Use StripScriptTags first when stored values are
// rendered without a template engine's own escaping.
package sanitizer
