package composition

import (
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// Notation is a notation value in a composition file: a string, or a
// list whose first item is a string.
type Notation string

// File is the shape of a composition file.
type File struct {
	Name        string           `json:"name,omitempty" jsonschema:"display name, defaults to the file name"`
	Aroha       Notation         `json:"aroha" jsonschema:"ascending scale"`
	Avroha      Notation         `json:"avroha" jsonschema:"descending scale"`
	Pakad       Notation         `json:"pakad,omitempty" jsonschema:"signature phrases, comma separated"`
	Alankars    Notation         `json:"alankars,omitempty" jsonschema:"practice patterns, comma separated"`
	Swarmaalika []map[string]any `json:"swarmaalika,omitempty" jsonschema:"ordered single-key maps: sam, mukra, sthayi, antara, tihayi"`
}

// Schema returns the JSON schema of a composition file.
func Schema() (*jsonschema.Schema, error) {
	notation := &jsonschema.Schema{
		Description: "space separated beats; commas split blocks",
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Types: []string{"string", "null"}}},
		},
	}
	return jsonschema.For[File](&jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			reflect.TypeFor[Notation](): notation,
		},
	})
}
