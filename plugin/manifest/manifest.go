// Package manifest validates and decodes a plugin's optional plugin.json
// sidecar — its declared name, version, the operations it can return from
// End, and its default UI language — against a fixed JSON Schema before
// the life-cycle driver trusts any of it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Manifest is a plugin's declared identity and capabilities.
type Manifest struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Operations      []string `json:"operations"`
	DefaultLanguage string   `json:"defaultLanguage"`
}

// schemaJSON is the fixed JSON Schema every plugin.json is validated
// against. Operation and language words mirror plugin.h's
// SPRINT_OPERATION_NAMES and SPRINT_LANGUAGE_NAMES, lower-cased and
// hyphenated the way this repository spells enum words elsewhere.
const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "version", "operations"],
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"version": {"type": "string", "minLength": 1},
		"operations": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "string",
				"enum": ["none", "replace-absolute", "add-absolute", "replace-relative", "add-relative"]
			}
		},
		"defaultLanguage": {
			"type": "string",
			"enum": ["english", "german", "french"]
		}
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("schema://plugin-manifest.json", strings.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("manifest: compiling schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("schema://plugin-manifest.json")
	})
	return compiled, compileErr
}

// Parse validates data against the manifest schema, then decodes it into
// a Manifest.
func Parse(data []byte) (*Manifest, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: invalid JSON: %w", err)
	}
	if err := s.Validate(raw); err != nil {
		return nil, fmt.Errorf("manifest: schema validation: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: decoding: %w", err)
	}
	return &m, nil
}

// Load reads path and parses it as a plugin manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	return Parse(data)
}

// HasOperation reports whether m declares support for the named operation
// word (e.g. "add-absolute").
func (m *Manifest) HasOperation(op string) bool {
	for _, o := range m.Operations {
		if o == op {
			return true
		}
	}
	return false
}
