package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_RendersOpenAPIDocument(t *testing.T) {
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			OperationID string `json:"operationId"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "Asset Ledger API", doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	require.Contains(t, doc.Paths, "/payments/{id}/record")
	assert.NotEmpty(t, doc.Paths["/payments/{id}/record"]["post"].OperationID)
	assert.Contains(t, doc.Paths, "/sweeps/run")
}
