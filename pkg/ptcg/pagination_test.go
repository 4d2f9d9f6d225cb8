package ptcg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

type testItem struct {
	ID   string
	Name string
}

// mockLister serves pre-built pages and counts calls.
type mockLister struct {
	pages map[int]*ptcg.ListResponse[testItem]
	calls int
	err   error
}

func (m *mockLister) List(ctx context.Context, params *ptcg.QueryParams) (*ptcg.ListResponse[testItem], error) {
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	page := 1
	if params != nil && params.Page > 0 {
		page = params.Page
	}

	response, ok := m.pages[page]
	if !ok {
		return &ptcg.ListResponse[testItem]{Data: []testItem{}}, nil
	}

	return response, nil
}

func twoPageLister() *mockLister {
	return &mockLister{
		pages: map[int]*ptcg.ListResponse[testItem]{
			1: {
				Data: []testItem{
					{ID: "1", Name: "Item 1"},
					{ID: "2", Name: "Item 2"},
				},
				Page:       1,
				PageSize:   2,
				Count:      2,
				TotalCount: 3,
			},
			2: {
				Data: []testItem{
					{ID: "3", Name: "Item 3"},
				},
				Page:       2,
				PageSize:   2,
				Count:      1,
				TotalCount: 3,
			},
		},
	}
}

func TestPageIterator_HasNext(t *testing.T) {
	t.Parallel()

	lister := twoPageLister()
	ctx := context.Background()
	iterator := ptcg.NewPageIterator[testItem](ctx, lister, ptcg.NewQueryParams().WithPageSize(2))

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item1.ID)

	assert.True(t, iterator.HasNext())

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item2.ID)

	// Page 2
	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item3.ID)

	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, ptcg.ErrNoMoreItems)
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	lister := twoPageLister()
	items, err := ptcg.NewPageIterator[testItem](context.Background(), lister, ptcg.NewQueryParams().WithPageSize(2)).All()

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)
	assert.Equal(t, 2, lister.calls)
}

func TestPageIterator_ExplicitPageFetchesOnePage(t *testing.T) {
	t.Parallel()

	lister := twoPageLister()
	items, err := ptcg.FetchAll[testItem](context.Background(), lister, ptcg.NewQueryParams().WithPage(1).WithPageSize(2))

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_EmptyCollection(t *testing.T) {
	t.Parallel()

	lister := &mockLister{pages: map[int]*ptcg.ListResponse[testItem]{}}
	items, err := ptcg.FetchAll[testItem](context.Background(), lister, nil)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_ListError(t *testing.T) {
	t.Parallel()

	lister := &mockLister{err: errors.New("connection refused")}
	items, err := ptcg.FetchAll[testItem](context.Background(), lister, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching page 1")
	assert.Empty(t, items)
}

func TestFetchAll_StopsOnShortPage(t *testing.T) {
	t.Parallel()

	// One page holding fewer items than the page size: no second request.
	lister := &mockLister{
		pages: map[int]*ptcg.ListResponse[testItem]{
			1: {
				Data:     []testItem{{ID: "1"}},
				Page:     1,
				PageSize: 50,
				Count:    1,
			},
		},
	}

	items, err := ptcg.FetchAll[testItem](context.Background(), lister, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, lister.calls)
}
