package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/search"
)

type recorded struct {
	method string
	path   string
	body   string
}

type fakeTransport struct {
	requests []recorded
	respond  func(r *http.Request) (int, string)
}

func (f *fakeTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	var body string
	if r.Body != nil {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
	}
	f.requests = append(f.requests, recorded{r.Method, r.URL.Path, body})

	status, payload := http.StatusOK, `{}`
	if f.respond != nil {
		status, payload = f.respond(r)
	}
	h := http.Header{}
	h.Set("X-Elastic-Product", "Elasticsearch")
	h.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(payload)),
		Request:    r,
	}, nil
}

func newIndex(t *testing.T, ft *fakeTransport) *search.ExpenseIndex {
	t.Helper()
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://es.test:9200"},
		Transport: ft,
	})
	require.NoError(t, err)
	return search.NewExpenseIndex(es, "expenses")
}

func TestExpenseIndex_Index(t *testing.T) {
	ft := &fakeTransport{}
	idx := newIndex(t, ft)

	e := &entity.Expense{
		ID:          "e-1",
		UserID:      "u-1",
		Description: "Team lunch",
		Price:       decimal.RequireFromString("12.50"),
		Date:        time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, idx.Index(context.Background(), e))

	require.Len(t, ft.requests, 1)
	assert.Equal(t, http.MethodPut, ft.requests[0].method)
	assert.Equal(t, "/expenses/_doc/e-1", ft.requests[0].path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(ft.requests[0].body), &doc))
	assert.Equal(t, "u-1", doc["user_id"])
	assert.Equal(t, 12.5, doc["price"])
	assert.Equal(t, "2024-06-01 12:00:00", doc["date"])
}

func TestExpenseIndex_Search(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) (int, string) {
		return http.StatusOK, `{"hits":{"hits":[{"_id":"e-2"},{"_id":"e-1"}]}}`
	}}
	idx := newIndex(t, ft)

	ids, err := idx.Search(context.Background(), "u-1", "lunch", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"e-2", "e-1"}, ids)

	require.Len(t, ft.requests, 1)
	assert.Equal(t, "/expenses/_search", ft.requests[0].path)
	assert.Contains(t, ft.requests[0].body, `"user_id":"u-1"`)
	assert.Contains(t, ft.requests[0].body, `"query":"lunch"`)
}

func TestExpenseIndex_SearchError(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) (int, string) {
		return http.StatusInternalServerError, `{"error":"boom"}`
	}}
	_, err := newIndex(t, ft).Search(context.Background(), "u-1", "", 10)
	assert.Error(t, err)
}

func TestExpenseIndex_RemoveIgnoresMissing(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) (int, string) {
		return http.StatusNotFound, `{"result":"not_found"}`
	}}
	assert.NoError(t, newIndex(t, ft).Remove(context.Background(), "e-1"))
}

func TestExpenseIndex_EnsureIndex(t *testing.T) {
	ft := &fakeTransport{respond: func(r *http.Request) (int, string) {
		if r.Method == http.MethodHead {
			return http.StatusNotFound, ``
		}
		return http.StatusOK, `{"acknowledged":true}`
	}}
	require.NoError(t, newIndex(t, ft).EnsureIndex(context.Background()))
	require.Len(t, ft.requests, 2)
	assert.Equal(t, http.MethodPut, ft.requests[1].method)
	assert.Contains(t, ft.requests[1].body, `"user_id"`)
}
