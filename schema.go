package toolcall

import (
	"errors"
	"maps"
	"reflect"
	"strconv"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// callArgs is the wire form of a conforming tool call. It exists only to
// drive schema generation; Validate accepts looser payloads than this shape
// (padded strings, stringified numbers) because LLMs routinely produce them.
type callArgs struct {
	Action string `json:"action" enum:"search,answer" description:"What to do: run a search or answer directly."`
	Q      string `json:"q,omitempty" description:"Search query. Required when action is 'search', ignored otherwise."`
	K      int    `json:"k,omitempty" minimum:"1" maximum:"5" default:"3" description:"Number of results to return."`
}

// compiledSchema pairs the exported schema map with its resolved validator.
type compiledSchema struct {
	schemaMap map[string]any
	resolved  *jsonschema.Resolved
}

var callSchema = sync.OnceValues(buildCallSchema)

var errNilSchema = errors.New("schema reflection returned nil")

// Schema returns the JSON Schema for the call payload as a map, suitable for
// an LLM tool definition. It is a shallow copy (top-level keys only); nested
// maps are shared and callers must not mutate them.
func Schema() (map[string]any, error) {
	cs, err := callSchema()
	if err != nil {
		return nil, err
	}
	return maps.Clone(cs.schemaMap), nil
}

// SchemaValidate checks v strictly against the published schema: no trimming,
// no coercion, no defaulting. Padded enum values and stringified numbers that
// Validate accepts are rejected here. The Map form of any Call returned by
// Validate always passes. Failures are reported as ClientError wrapping
// ErrValidation.
func SchemaValidate(v any) error {
	cs, err := callSchema()
	if err != nil {
		return err
	}
	if err := cs.resolved.Validate(v); err != nil {
		return &ClientError{Reason: err.Error(), Err: ErrValidation}
	}
	return nil
}

// buildCallSchema produces the JSON Schema map for the call payload and a
// resolved validator for it. Built once, on first use.
func buildCallSchema() (compiledSchema, error) {
	schema, err := jsonschema.For[callArgs](&jsonschema.ForOptions{})
	if err != nil {
		return compiledSchema{}, err
	}
	if schema == nil {
		return compiledSchema{}, errNilSchema
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return compiledSchema{}, err
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return compiledSchema{}, err
	}
	enrichSchemaFromStructTags(schemaMap, reflect.TypeOf(callArgs{}))
	// Only action is unconditionally required; q becomes required through the
	// if/then clause below, and k falls back to its default.
	schemaMap["required"] = []any{"action"}
	schemaMap["additionalProperties"] = false
	schemaMap["if"] = map[string]any{
		"properties": map[string]any{
			"action": map[string]any{"const": string(ActionSearch)},
		},
	}
	schemaMap["then"] = map[string]any{"required": []any{"q"}}
	// Resolution must not depend on generated ids.
	delete(schemaMap, "id")
	delete(schemaMap, "$id")
	resolved, err := compileRawSchema(schemaMap)
	if err != nil {
		return compiledSchema{}, err
	}
	return compiledSchema{schemaMap: schemaMap, resolved: resolved}, nil
}

// enrichSchemaFromStructTags adds description, enum, and numeric bounds from
// struct tags to root-level properties. The json tag (first part before the
// comma) is used to match property keys.
func enrichSchemaFromStructTags(schemaMap map[string]any, typ reflect.Type) {
	if schemaMap == nil || typ == nil || typ.Kind() != reflect.Struct {
		return
	}
	props, ok := schemaMap["properties"].(map[string]any)
	if !ok || len(props) == 0 {
		return
	}
	// Build json name -> field for the root struct
	jsonToField := make(map[string]reflect.StructField)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		jsonTag := strings.Split(field.Tag.Get("json"), ",")[0]
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		jsonToField[jsonTag] = field
	}
	for key, val := range props {
		prop, ok := val.(map[string]any)
		if !ok {
			continue
		}
		field, ok := jsonToField[key]
		if !ok {
			continue
		}
		if desc := field.Tag.Get("description"); desc != "" {
			prop["description"] = desc
		}
		if enumStr := field.Tag.Get("enum"); enumStr != "" {
			parts := strings.Split(enumStr, ",")
			enum := make([]any, len(parts))
			for i, p := range parts {
				enum[i] = strings.TrimSpace(p)
			}
			prop["enum"] = enum
		}
		for _, kw := range []string{"minimum", "maximum", "default"} {
			tag := field.Tag.Get(kw)
			if tag == "" {
				continue
			}
			if n, err := strconv.Atoi(tag); err == nil {
				prop[kw] = float64(n)
			}
		}
	}
}

// compileRawSchema compiles a raw JSON Schema map into a resolved validator.
// The map is not mutated.
func compileRawSchema(schemaMap map[string]any) (*jsonschema.Resolved, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Resolve(nil)
}
