package spec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// defaultSecurityBullets covers the baseline every specification must
// mention when the model left the section out or returned garbage.
var defaultSecurityBullets = []string{
	"Data encryption at rest and in transit",
	"API authentication and authorization",
	"Role-based access control",
	"Audit logging and monitoring",
	"Compliance with relevant regulations (GDPR/SOC2 as applicable)",
}

// normalizeSecurity renders whatever shape the model produced for the
// security section as flat bullet strings. Arrays pass through, bare
// strings become one bullet, nested objects flatten to
// "path / key: value" lines. Empty results return nil so the caller
// substitutes the default set.
func normalizeSecurity(value json.RawMessage) []string {
	if list := coerceStringArray(value); len(list) > 0 {
		return list
	}

	var tree interface{}
	if err := json.Unmarshal(value, &tree); err != nil {
		return nil
	}

	var bullets []string
	flattenSecurity(tree, nil, &bullets)
	return bullets
}

func flattenSecurity(node interface{}, path []string, bullets *[]string) {
	switch v := node.(type) {
	case nil:
	case []interface{}:
		for _, item := range v {
			flattenSecurity(item, path, bullets)
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := v[k]
			switch child.(type) {
			case map[string]interface{}, []interface{}, nil:
				flattenSecurity(child, append(path, k), bullets)
			default:
				*bullets = append(*bullets, fmt.Sprintf("%s: %v", strings.Join(append(path, k), " / "), child))
			}
		}
	default:
		*bullets = append(*bullets, fmt.Sprintf("%v", v))
	}
}
