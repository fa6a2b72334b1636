package loader

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const postsSchemaName = "posts.schema.json"

// Only the fields postboard reads are constrained; anything else the endpoint
// sends is allowed through.
const postsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "body"],
    "properties": {
      "id":    {"type": "integer"},
      "title": {"type": "string"},
      "body":  {"type": "string"}
    }
  }
}`

var (
	postsSchemaOnce sync.Once
	postsSchemaC    *jsonschema.Schema
	postsSchemaErr  error
)

func compiledPostsSchema() (*jsonschema.Schema, error) {
	postsSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(postsSchemaName, strings.NewReader(postsSchema)); err != nil {
			postsSchemaErr = err
			return
		}
		postsSchemaC, postsSchemaErr = c.Compile(postsSchemaName)
	})
	return postsSchemaC, postsSchemaErr
}

// validatePosts checks a value decoded with json.Decoder.UseNumber.
func validatePosts(v any) error {
	s, err := compiledPostsSchema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
