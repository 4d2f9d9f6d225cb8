package ptcg

import (
	"context"
	"fmt"

	"github.com/tcgkit-io/ptcg/internal/constants"
)

// PageLister is the single-page fetch any paginated client exposes. The typed
// resource clients all satisfy it for their payload type.
type PageLister[T any] interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[T], error)
}

// PageIterator walks a paginated collection item by item, fetching pages
// lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx    context.Context
	lister PageLister[T]
	params *QueryParams

	buffer  []T
	index   int
	page    int
	onePage bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over the collection served by lister.
// If params carry an explicit Page, exactly that page is iterated.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], params *QueryParams) *PageIterator[T] {
	params = params.Clone()
	onePage := params.Page > 0

	if !onePage {
		params.Page = constants.FirstPage
	}

	return &PageIterator[T]{
		ctx:     ctx,
		lister:  lister,
		params:  params,
		page:    params.Page,
		onePage: onePage,
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the current one is exhausted. A fetch error makes HasNext return true
// so the caller observes the error from Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.index < len(it.buffer) {
		return true
	}

	if it.done {
		return false
	}

	it.fetch()

	return it.err != nil || it.index < len(it.buffer)
}

// Next returns the next item. It returns ErrNoMoreItems once the collection
// is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.index >= len(it.buffer) && !it.done && it.err == nil {
		it.fetch()
	}

	if it.err != nil {
		// Hand the error out once; the iterator is exhausted afterwards.
		err := it.err
		it.err = nil

		return zero, err
	}

	if it.index >= len(it.buffer) {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining items in server order.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// fetch loads the next page into the buffer and decides whether more pages
// remain.
func (it *PageIterator[T]) fetch() {
	it.params.Page = it.page

	resp, err := it.lister.List(it.ctx, it.params)
	if err != nil {
		it.err = fmt.Errorf("fetching page %d: %w", it.page, err)
		it.done = true

		return
	}

	it.buffer = resp.Data
	it.index = 0
	it.page++

	if it.onePage {
		it.done = true

		return
	}

	pageSize := resp.PageSize
	if pageSize == 0 {
		pageSize = it.params.PageSize
	}

	if pageSize == 0 {
		pageSize = constants.DefaultPageSize
	}

	switch {
	case len(resp.Data) == 0:
		it.done = true
	case len(resp.Data) < pageSize:
		it.done = true
	case resp.TotalCount > 0 && resp.Page > 0 && resp.Page*pageSize >= resp.TotalCount:
		it.done = true
	}
}

// FetchAll fetches every page of the collection served by lister and returns
// the accumulated items in server order.
func FetchAll[T any](ctx context.Context, lister PageLister[T], params *QueryParams) ([]T, error) {
	return NewPageIterator[T](ctx, lister, params).All()
}
