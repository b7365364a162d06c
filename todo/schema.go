package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const todosSchemaURL = "https://github.com/amonks/todolist/todo/todos.schema.json"

//go:embed todos.schema.json
var todosSchemaJSON string

var (
	todosSchemaOnce sync.Once
	todosSchema     *jsonschema.Schema
	todosSchemaErr  error
)

func compiledTodosSchema() (*jsonschema.Schema, error) {
	todosSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(todosSchemaURL, strings.NewReader(todosSchemaJSON)); err != nil {
			todosSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		todosSchema, todosSchemaErr = compiler.Compile(todosSchemaURL)
		if todosSchemaErr != nil {
			todosSchemaErr = fmt.Errorf("compile schema: %w", todosSchemaErr)
		}
	})
	return todosSchema, todosSchemaErr
}

// validateTodosDocument checks raw stored JSON against the collection schema.
func validateTodosDocument(raw []byte) error {
	schema, err := compiledTodosSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema: %s", firstSchemaCause(ve))
		}
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func firstSchemaCause(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, ve.Message)
}
