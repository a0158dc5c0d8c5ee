// Package template normalizes loosely-shaped JSON records onto a fixed
// field template: allow-listed fields are copied from the source,
// unknown fields are dropped, and missing fields keep the template's
// default value.
package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is an ordered field → default mapping.
type Template struct {
	fields   []string
	defaults map[string]any
}

// Builtin returns the consumable-record template.
func Builtin() *Template {
	fields := []string{
		"part_number",
		"color",
		"printer_model",
		"consumable_type",
		"yield",
		"region_zone",
		"metered_sold",
		"iot_codename",
		"chip_type",
	}
	defaults := make(map[string]any, len(fields))
	for _, f := range fields {
		defaults[f] = ""
	}
	return &Template{fields: fields, defaults: defaults}
}

// LoadYAML reads a custom template from a YAML mapping of field names
// to default values. Field order in the file is preserved for listings.
func LoadYAML(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML in template %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("template %s is empty", path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("template %s must be a mapping of field names to defaults", path)
	}

	t := &Template{defaults: map[string]any{}}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("template %s: bad field name on line %d: %w", path, keyNode.Line, err)
		}
		var val any
		if err := valNode.Decode(&val); err != nil {
			return nil, fmt.Errorf("template %s: bad default for %q: %w", path, key, err)
		}
		if val == nil {
			val = ""
		}
		t.fields = append(t.fields, key)
		t.defaults[key] = val
	}
	if len(t.fields) == 0 {
		return nil, fmt.Errorf("template %s defines no fields", path)
	}
	return t, nil
}

// Fields returns the template's field names in declaration order.
func (t *Template) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// Apply copies allow-listed fields from src onto a fresh template copy.
func (t *Template) Apply(src map[string]any) map[string]any {
	out := make(map[string]any, len(t.defaults))
	for k, v := range t.defaults {
		out[k] = v
	}
	for k, v := range src {
		if _, ok := t.defaults[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Normalize applies the template to a single object or an array of
// objects. Non-object array entries are skipped and their indices
// returned. Anything else is an error.
func Normalize(doc any, t *Template) (results []map[string]any, skipped []int, err error) {
	switch v := doc.(type) {
	case map[string]any:
		return []map[string]any{t.Apply(v)}, nil, nil
	case []any:
		results = make([]map[string]any, 0, len(v))
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				skipped = append(skipped, i)
				continue
			}
			results = append(results, t.Apply(obj))
		}
		return results, skipped, nil
	default:
		return nil, nil, fmt.Errorf("source must be an object or array of objects, got %T", doc)
	}
}
