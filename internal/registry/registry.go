package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Rules maps a structural path to the replacement value substituted when the
// cleaner walk reaches that path. Replacements are arbitrary JSON-serializable
// values; in practice most are the string "REDACTED".
type Rules map[string]any

// ErrUnknownResourceType is returned by Lookup for resource types that have no
// registered rule set.
var ErrUnknownResourceType = errors.New("unknown resource type")

//go:embed rules.yaml
var rulesYAML []byte

// byResourceType is fixed at build time and never mutated after init.
var byResourceType = mustLoad(rulesYAML)

func mustLoad(data []byte) map[string]Rules {
	var m map[string]Rules
	if err := yaml.Unmarshal(data, &m); err != nil {
		panic(fmt.Sprintf("registry: malformed embedded rules: %v", err))
	}
	return m
}

// Lookup returns the redaction rules registered for resourceType. The rule set
// for a registered type may be empty, which means only email obfuscation
// applies to its documents.
func Lookup(resourceType string) (Rules, error) {
	rules, ok := byResourceType[resourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResourceType, resourceType)
	}
	return rules, nil
}

// ResourceTypes returns the registered resource type names in sorted order.
func ResourceTypes() []string {
	names := make([]string, 0, len(byResourceType))
	for name := range byResourceType {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
