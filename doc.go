// Package nonempty provides String, a growable text buffer that always
// contains at least one byte.
//
// - Construction is validated (New, FromString, Parse) and hands rejected
//   input back through *RejectedError; NewUnchecked trusts the caller.
// - Every exposed mutation can only append or insert, so no sequence of calls
//   can empty a String. Truncation, clearing and mutable range access are
//   not offered.
// - Text, JSON (goccy/go-json) and YAML (gopkg.in/yaml.v3) adapters encode a
//   String exactly like the plain string and reject empty or non-string
//   input with Issues.
// - JSONSchema describes the type for schema generators.
//
// Design policy:
// - Keep the value type and its adapters in the root package; put codecs
//   under codec/, messages under i18n/ and the schema document under
//   jsonschema/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	name, err := nonempty.FromString(input)
//	if err != nil {
//		var rej *nonempty.RejectedError
//		errors.As(err, &rej) // rej.Text() is the original input
//	}
//	name.PushString(" (draft)")
//	b, _ := json.Marshal(name)
package nonempty
