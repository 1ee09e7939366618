// Package cleaner redacts sensitive fields from parsed JSON documents.
//
// The walk is depth-first with path-string accumulation: each object field
// appends ".<key>" to the current path and each array element appends ".[]",
// so all elements of an array share one wildcard path. When the accumulated
// path exactly matches a rule, the whole subtree is swapped for the rule's
// replacement and never descended into.
package cleaner

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/lyndonlyu/json-cleaner/internal/registry"
)

// emailPlaceholder replaces every obfuscated address.
const emailPlaceholder = "testuser@example.com"

// corpEmailRe matches corporate addresses whose local part is one or more
// lowercase ASCII letters. The leading word boundary keeps mixed-case local
// parts such as JSmith@google.com fully intact instead of rewriting their
// lowercase tail.
var corpEmailRe = regexp.MustCompile(`\b[a-z]+@google\.com`)

// Redact walks value depth-first from the given path and returns a copy with
// every rule-matched subtree replaced and every corporate email in string
// values obfuscated. The input value is never mutated. The document root is
// path "".
func Redact(path string, value any, rules registry.Rules) any {
	if replacement, ok := rules[path]; ok {
		return replacement
	}
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = Redact(path+"."+key, child, rules)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = redactElement(path, elem, rules)
		}
		return out
	case string:
		return corpEmailRe.ReplaceAllLiteralString(v, emailPlaceholder)
	default:
		// json.Number, bool, nil: pass through verbatim.
		return v
	}
}

// redactElement redacts one array element. Elements shaped like metadata
// key/value pairs are matched on the runtime value of their key field rather
// than the wildcard segment: a match replaces only the value field, and a
// non-match passes the whole element through with no descent, so nothing
// inside an unmatched pair is ever rewritten. Everything else recurses under
// the parent's ".[]" path.
func redactElement(parent string, elem any, rules registry.Rules) any {
	if obj, ok := elem.(map[string]any); ok {
		if key, isPair := keyValuePair(obj); isPair {
			replacement, matched := rules[parent+"."+key]
			if !matched {
				return obj
			}
			out := make(map[string]any, len(obj))
			for k, v := range obj {
				out[k] = v
			}
			out["value"] = replacement
			return out
		}
	}
	return Redact(parent+".[]", elem, rules)
}

// keyValuePair reports whether obj is a key/value pair element, returning the
// key field's value when it is. Both fields must be present and the key must
// be a string; anything else is walked as an ordinary object.
func keyValuePair(obj map[string]any) (string, bool) {
	key, ok := obj["key"].(string)
	if !ok {
		return "", false
	}
	if _, ok := obj["value"]; !ok {
		return "", false
	}
	return key, true
}

// Clean reads one JSON document from r, redacts it with rules, and writes the
// result to w with two-space indentation, lexicographically sorted object keys
// and a trailing newline. Numeric literals are preserved verbatim.
func Clean(r io.Reader, w io.Writer, rules registry.Rules) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	redacted := Redact("", doc, rules)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(redacted)
}
