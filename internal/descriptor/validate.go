package descriptor

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// Verdict is the structural validator's output. Consumers only look at the
// boolean and the issue list; a failed verdict keeps a descriptor out of the
// store entirely, so everything downstream (executor, linter) may assume
// structural validity.
type Verdict struct {
	Valid  bool
	Issues []string
}

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	generated := reflector.Reflect(&Descriptor{})

	raw, err := json.Marshal(generated)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}

	// gojsonschema does not understand the 2020-12 dialect marker the
	// generator emits; drop it and let the validator use its default draft.
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to reload generated schema: %w", err)
	}
	delete(doc, "$schema")
	delete(doc, "$id")
	normalizeBoolSchemas(doc)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile descriptor schema: %w", err)
	}
	return schema, nil
})

// normalizeBoolSchemas rewrites the boolean subschemas the generator emits
// for untyped fields ("true" meaning anything) into empty object schemas,
// which every draft the validator speaks accepts.
func normalizeBoolSchemas(v any) {
	obj, ok := v.(map[string]any)
	if !ok {
		return
	}
	for key, val := range obj {
		switch key {
		case "properties", "$defs", "definitions":
			props, ok := val.(map[string]any)
			if !ok {
				continue
			}
			for name, sub := range props {
				if b, isBool := sub.(bool); isBool && b {
					props[name] = map[string]any{}
					continue
				}
				normalizeBoolSchemas(sub)
			}
		case "items", "additionalProperties":
			if b, isBool := val.(bool); isBool && b && key == "items" {
				obj[key] = map[string]any{}
				continue
			}
			normalizeBoolSchemas(val)
		default:
			normalizeBoolSchemas(val)
		}
	}
}

// ValidateStructure checks a raw descriptor document against the JSON schema
// derived from the typed model. The error return covers validator plumbing
// only; a structurally bad document comes back as a verdict, not an error.
func ValidateStructure(raw map[string]any) (Verdict, error) {
	schema, err := compiledSchema()
	if err != nil {
		return Verdict{}, err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return Verdict{}, fmt.Errorf("schema validation failed: %w", err)
	}

	verdict := Verdict{Valid: result.Valid()}
	for _, issue := range result.Errors() {
		verdict.Issues = append(verdict.Issues, issue.String())
	}
	return verdict, nil
}
