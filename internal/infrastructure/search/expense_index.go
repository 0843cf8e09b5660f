// Package search keeps an Elasticsearch index of expense descriptions for owner-scoped lookup.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

const requestTimeout = 3 * time.Second

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "user_id":     {"type": "keyword"},
      "description": {"type": "text"},
      "price":       {"type": "scaled_float", "scaling_factor": 100},
      "date":        {"type": "date", "format": "yyyy-MM-dd HH:mm:ss"},
      "created_at":  {"type": "date", "format": "yyyy-MM-dd HH:mm:ss"}
    }
  }
}`

type ExpenseIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewExpenseIndex(es *elasticsearch.Client, index string) *ExpenseIndex {
	return &ExpenseIndex{es: es, index: index}
}

type expenseDoc struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (i *ExpenseIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.IndicesExistsRequest{Index: []string{i.index}}.Do(c, i.es)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = esapi.IndicesCreateRequest{Index: i.index, Body: strings.NewReader(indexMapping)}.Do(c, i.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && !strings.Contains(readBody(res), "resource_already_exists_exception") {
		return fmt.Errorf("create index %s: %s", i.index, res.Status())
	}
	return nil
}

func (i *ExpenseIndex) Index(ctx context.Context, e *entity.Expense) error {
	doc := expenseDoc{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Price:       e.Price.InexactFloat64(),
		Date:        helpers.FormatDateTime(e.Date),
		CreatedAt:   helpers.FormatDateTime(e.CreatedAt),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req := esapi.IndexRequest{Index: i.index, DocumentID: e.ID, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, i.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index expense %s: %s", e.ID, res.Status())
	}
	return nil
}

func (i *ExpenseIndex) Remove(ctx context.Context, id string) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := esapi.DeleteRequest{Index: i.index, DocumentID: id}.Do(c, i.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("remove expense %s: %s", id, res.Status())
	}
	return nil
}

// Search returns ids of userID's expenses matching q, best match first.
// An empty q lists the most recent expenses.
func (i *ExpenseIndex) Search(ctx context.Context, userID, q string, size int) ([]string, error) {
	filter := []any{map[string]any{"term": map[string]any{"user_id": userID}}}
	boolQuery := map[string]any{"filter": filter}
	body := map[string]any{"size": size, "_source": false}
	if strings.TrimSpace(q) != "" {
		boolQuery["must"] = []any{map[string]any{
			"match": map[string]any{
				"description": map[string]any{"query": q, "fuzziness": "AUTO"},
			},
		}}
	} else {
		body["sort"] = []any{map[string]any{"date": "desc"}}
	}
	body["query"] = map[string]any{"bool": boolQuery}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := i.es.Search(
		i.es.Search.WithContext(c),
		i.es.Search.WithIndex(i.index),
		i.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search expenses: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

func readBody(res *esapi.Response) string {
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(res.Body)
	return buf.String()
}
