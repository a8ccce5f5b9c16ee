// api/audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
)

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, query Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// Ping checks the cluster is reachable.
func (r *ElasticsearchRepository) Ping(ctx context.Context) error {
	res, err := r.esClient.Ping(r.esClient.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", res.String())
	}
	return nil
}

// LogAccess logs an audit action to Elasticsearch.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// QueryLogs searches audit logs newest first.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(buildSearch(query)); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}

func buildSearch(query Query) map[string]interface{} {
	must := []interface{}{}

	timestamp := map[string]interface{}{}
	if !query.From.IsZero() {
		timestamp["gte"] = query.From.Format(time.RFC3339)
	}
	if !query.To.IsZero() {
		timestamp["lte"] = query.To.Format(time.RFC3339)
	}
	if len(timestamp) > 0 {
		must = append(must, map[string]interface{}{"range": map[string]interface{}{"timestamp": timestamp}})
	}

	term := func(field string, value interface{}) {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{field: value}})
	}
	if query.UserID != 0 {
		term("user_id", query.UserID)
	}
	if query.ResourceType != "" {
		term("resource_type.keyword", query.ResourceType)
	}
	if query.ResourceID != 0 {
		term("resource_id", query.ResourceID)
	}
	if query.Action != "" {
		term("action.keyword", query.Action)
	}

	size := query.Limit
	if size <= 0 {
		size = 50
	}
	return map[string]interface{}{
		"from":  query.Offset,
		"size":  size,
		"sort":  []interface{}{map[string]interface{}{"timestamp": map[string]interface{}{"order": "desc"}}},
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
	}
}

// LogRepository writes audit entries to the application log. It backs the
// audit service when Elasticsearch is not reachable at startup.
type LogRepository struct{}

func (LogRepository) LogAccess(ctx context.Context, log AuditLog) error {
	logger.Info("Audit",
		zap.String("action", log.Action),
		zap.Uint("userID", log.UserID),
		zap.String("resourceType", log.ResourceType),
		zap.Uint("resourceID", log.ResourceID),
		zap.String("from", log.FromStatus),
		zap.String("to", log.ToStatus),
		zap.Bool("accessGranted", log.AccessGranted),
		zap.String("error", log.Error))
	return nil
}

func (LogRepository) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	return nil, fmt.Errorf("audit search is unavailable without elasticsearch")
}
