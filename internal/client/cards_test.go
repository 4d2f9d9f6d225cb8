package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

func newTestTransport(serverURL string) *internalhttp.Client {
	return internalhttp.NewClient(serverURL, &internalhttp.Options{RetryMax: -1})
}

func TestCardsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cards/xy1-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"xy1-1","name":"Test"}}`))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	card, err := cards.Get(context.Background(), "xy1-1")
	require.NoError(t, err)
	assert.Equal(t, "xy1-1", card.ID)
	assert.Equal(t, "Test", card.Name)
}

func TestCardsClient_GetEmptyID(t *testing.T) {
	t.Parallel()

	cards := NewCardsClient(newTestTransport("http://127.0.0.1:0"))

	_, err := cards.Get(context.Background(), "")
	assert.ErrorIs(t, err, ptcg.ErrIDRequired)
}

func TestCardsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Card not found","code":404}}`))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	_, err := cards.Get(context.Background(), "missing-card")
	require.Error(t, err)
	assert.True(t, ptcg.IsNotFound(err))
}

func TestCardsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards", r.URL.Path)
		assert.Equal(t, "name:pikachu", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))

		_, _ = w.Write([]byte(`{
			"data": [{"id": "base1-58", "name": "Pikachu", "number": "58"}],
			"page": 1, "pageSize": 10, "count": 1, "totalCount": 1
		}`))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	params := ptcg.NewQueryParams().WithQ("name:pikachu").WithPageSize(10)

	resp, err := cards.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "base1-58", resp.Data[0].ID)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestCardsClient_ListNilParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	resp, err := cards.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestCardsClient_ListIsStateless(t *testing.T) {
	t.Parallel()

	var queries []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))
	ctx := context.Background()

	_, err := cards.List(ctx, ptcg.NewQueryParams().WithQ("name:mew"))
	require.NoError(t, err)

	// A later call without parameters must not inherit the earlier query.
	_, err = cards.List(ctx, nil)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "q=")
	assert.Empty(t, queries[1])
}

func TestCardsClient_ListAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))

		switch page {
		case "1":
			_, _ = w.Write([]byte(`{
				"data": [{"id": "a-1", "name": "One", "number": "1"}, {"id": "a-2", "name": "Two", "number": "2"}],
				"page": 1, "pageSize": 2, "count": 2, "totalCount": 3
			}`))
		case "2":
			_, _ = w.Write([]byte(`{
				"data": [{"id": "a-3", "name": "Three", "number": "3"}],
				"page": 2, "pageSize": 2, "count": 1, "totalCount": 3
			}`))
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	all, err := cards.ListAll(context.Background(), ptcg.NewQueryParams().WithPageSize(2))
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, "a-1", all[0].ID)
	assert.Equal(t, "a-2", all[1].ID)
	assert.Equal(t, "a-3", all[2].ID)
}

func TestCardsClient_ListTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	_, err := cards.List(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing cards")
}

func TestSetsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sets/base1", r.URL.Path)

		_, _ = w.Write([]byte(`{"data":{"id":"base1","name":"Base","series":"Base","total":102}}`))
	}))
	defer server.Close()

	sets := NewSetsClient(newTestTransport(server.URL))

	set, err := sets.Get(context.Background(), "base1")
	require.NoError(t, err)
	assert.Equal(t, "base1", set.ID)
	assert.Equal(t, "Base", set.Name)
	assert.Equal(t, 102, set.Total)
}

func TestSetsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sets", r.URL.Path)
		assert.Equal(t, "releaseDate", r.URL.Query().Get("orderBy"))

		_, _ = w.Write([]byte(`{
			"data": [{"id": "base1", "name": "Base"}, {"id": "base2", "name": "Jungle"}],
			"page": 1, "pageSize": 250, "count": 2, "totalCount": 2
		}`))
	}))
	defer server.Close()

	sets := NewSetsClient(newTestTransport(server.URL))

	resp, err := sets.List(context.Background(), ptcg.NewQueryParams().WithOrderBy("releaseDate"))
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Jungle", resp.Data[1].Name)
}

func TestGetResource_EscapesID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/weird%2Fid", r.URL.EscapedPath())

		_, _ = w.Write([]byte(fmt.Sprintf(`{"data":{"id":%q,"name":"Escaped"}}`, "weird/id")))
	}))
	defer server.Close()

	cards := NewCardsClient(newTestTransport(server.URL))

	card, err := cards.Get(context.Background(), "weird/id")
	require.NoError(t, err)
	assert.Equal(t, "weird/id", card.ID)
}
