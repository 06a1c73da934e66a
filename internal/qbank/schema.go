package qbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchemaJSON is the shape contract for the question bank file. The
// payload is rejected as a whole when it doesn't conform, before any
// catalog write happens.
const bankSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["category", "type", "prompt", "answer"],
    "properties": {
      "category": { "type": "string", "minLength": 1 },
      "type": { "enum": ["MCQ", "short", "calc"] },
      "prompt": { "type": "string", "minLength": 1 },
      "choices": {
        "type": ["array", "null"],
        "items": { "type": "string" }
      },
      "answer": { "type": ["integer", "string"] },
      "difficulty": { "type": "number" }
    }
  }
}`

var (
	schemaOnce sync.Once
	bankSchema *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if schemaErr = json.Unmarshal([]byte(bankSchemaJSON), &def); schemaErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		const url = "bank://questions.json"
		if schemaErr = c.AddResource(url, def); schemaErr != nil {
			return
		}
		bankSchema, schemaErr = c.Compile(url)
	})
	return bankSchema, schemaErr
}

// Parse validates raw bank bytes against the schema and decodes the items.
func Parse(raw []byte) ([]Item, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("question bank is not valid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank failed validation: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	return items, nil
}
