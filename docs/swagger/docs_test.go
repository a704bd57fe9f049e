package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedDocument(t *testing.T) {
	var doc struct {
		Swagger     string                     `json:"swagger"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.NotEmpty(t, doc.Paths, "document must describe the API surface")
	assert.NotEmpty(t, doc.Definitions)

	// A few routes that must stay documented.
	for _, path := range []string{
		"/api/v1/media/{id}/annotations",
		"/api/v1/lessons/{id}/assign",
		"/api/v1/recordings/{id}/download",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
