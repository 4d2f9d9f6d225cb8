package ptcg_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *ptcg.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   ptcg.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name: "with search expression",
			params: &ptcg.QueryParams{
				Q: "name:charizard set.id:base1",
			},
			expected: url.Values{
				"q": []string{"name:charizard set.id:base1"},
			},
		},
		{
			name: "with pagination",
			params: &ptcg.QueryParams{
				Page:     2,
				PageSize: 50,
			},
			expected: url.Values{
				"page":     []string{"2"},
				"pageSize": []string{"50"},
			},
		},
		{
			name: "with ordering",
			params: &ptcg.QueryParams{
				OrderBy: "-releaseDate",
			},
			expected: url.Values{
				"orderBy": []string{"-releaseDate"},
			},
		},
		{
			name: "with select",
			params: &ptcg.QueryParams{
				Select: []string{"id", "name", "rarity"},
			},
			expected: url.Values{
				"select": []string{"id,name,rarity"},
			},
		},
		{
			name: "with filters",
			params: &ptcg.QueryParams{
				Filters: map[string][]string{
					"ids": {"xy1-1", "xy1-2"},
				},
			},
			expected: url.Values{
				"ids": []string{"xy1-1,xy1-2"},
			},
		},
		{
			name: "with all options",
			params: &ptcg.QueryParams{
				Q:        "supertype:pokemon",
				Page:     3,
				PageSize: 25,
				OrderBy:  "name",
				Select:   []string{"id", "name"},
				Filters: map[string][]string{
					"ids": {"base1-4"},
				},
			},
			expected: url.Values{
				"q":        []string{"supertype:pokemon"},
				"page":     []string{"3"},
				"pageSize": []string{"25"},
				"orderBy":  []string{"name"},
				"select":   []string{"id,name"},
				"ids":      []string{"base1-4"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.ToValues()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQueryParams_Builders(t *testing.T) {
	t.Parallel()
	t.Run("chaining methods", func(t *testing.T) {
		t.Parallel()

		params := ptcg.NewQueryParams().
			WithQ("name:pikachu").
			WithPage(2).
			WithPageSize(100).
			WithOrderBy("-releaseDate").
			WithSelect("id", "name").
			WithFilter("ids", "base1-58")

		values := params.ToValues()

		assert.Equal(t, "name:pikachu", values.Get("q"))
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "100", values.Get("pageSize"))
		assert.Equal(t, "-releaseDate", values.Get("orderBy"))
		assert.Equal(t, "id,name", values.Get("select"))
		assert.Equal(t, "base1-58", values.Get("ids"))
	})

	t.Run("WithSelect appends", func(t *testing.T) {
		t.Parallel()

		params := ptcg.NewQueryParams().
			WithSelect("id").
			WithSelect("name", "rarity")

		assert.Equal(t, []string{"id", "name", "rarity"}, params.Select)
	})

	t.Run("WithFilter appends", func(t *testing.T) {
		t.Parallel()

		params := ptcg.NewQueryParams().
			WithFilter("ids", "xy1-1").
			WithFilter("ids", "xy1-2", "xy1-3")

		assert.Equal(t, []string{"xy1-1", "xy1-2", "xy1-3"}, params.Filters["ids"])
	})
}

func TestQueryParams_Clone(t *testing.T) {
	t.Parallel()

	original := ptcg.NewQueryParams().
		WithQ("name:mew").
		WithPage(1).
		WithFilter("ids", "base1-8")

	clone := original.Clone()
	clone.Page = 7
	clone.WithFilter("ids", "base1-9")

	assert.Equal(t, 1, original.Page)
	assert.Equal(t, []string{"base1-8"}, original.Filters["ids"])
	assert.Equal(t, 7, clone.Page)
	assert.Equal(t, []string{"base1-8", "base1-9"}, clone.Filters["ids"])
}

func TestNewQueryParams(t *testing.T) {
	t.Parallel()

	params := ptcg.NewQueryParams()

	assert.NotNil(t, params)
	assert.NotNil(t, params.Filters)
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 0, params.PageSize)
	assert.Empty(t, params.Q)
	assert.Empty(t, params.OrderBy)
	assert.Nil(t, params.Select)
}
