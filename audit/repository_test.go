package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearch(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	search := buildSearch(Query{From: from, UserID: 7, ResourceType: "complaint", Limit: 10, Offset: 20})

	assert.Equal(t, 10, search["size"])
	assert.Equal(t, 20, search["from"])

	must := search["query"].(map[string]interface{})["bool"].(map[string]interface{})["must"].([]interface{})
	assert.Len(t, must, 3)
	assert.Equal(t, map[string]interface{}{
		"range": map[string]interface{}{"timestamp": map[string]interface{}{"gte": "2024-05-01T00:00:00Z"}},
	}, must[0])
	assert.Equal(t, map[string]interface{}{"term": map[string]interface{}{"user_id": uint(7)}}, must[1])
}

func TestBuildSearchDefaults(t *testing.T) {
	search := buildSearch(Query{})
	assert.Equal(t, 50, search["size"])
	must := search["query"].(map[string]interface{})["bool"].(map[string]interface{})["must"].([]interface{})
	assert.Empty(t, must)
}
