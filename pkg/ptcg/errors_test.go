package ptcg_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &ptcg.APIError{Message: "Bad Request. Your request is either malformed or is missing required parameters.", Code: 400}
	assert.Contains(t, err.Error(), "Bad Request")
	assert.Contains(t, err.Error(), "400")
}

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with message", func(t *testing.T) {
		t.Parallel()

		err := &ptcg.ResponseError{
			Err:        ptcg.APIError{Message: "Not Found", Code: 404},
			StatusCode: http.StatusNotFound,
		}
		assert.Contains(t, err.Error(), "Not Found")
	})

	t.Run("without message", func(t *testing.T) {
		t.Parallel()

		err := &ptcg.ResponseError{StatusCode: http.StatusBadGateway}
		assert.Contains(t, err.Error(), "502")
	})
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &ptcg.ResponseError{StatusCode: http.StatusNotFound}
	assert.True(t, ptcg.IsNotFound(notFound))
	assert.True(t, ptcg.IsNotFound(fmt.Errorf("getting card: %w", notFound)))
	assert.True(t, ptcg.IsNotFound(ptcg.ErrNotFound))

	serverErr := &ptcg.ResponseError{StatusCode: http.StatusInternalServerError}
	assert.False(t, ptcg.IsNotFound(serverErr))
	assert.False(t, ptcg.IsNotFound(errors.New("boom")))
}

func TestIsRateLimited(t *testing.T) {
	t.Parallel()

	limited := &ptcg.ResponseError{StatusCode: http.StatusTooManyRequests}
	assert.True(t, ptcg.IsRateLimited(limited))
	assert.True(t, ptcg.IsRateLimited(fmt.Errorf("listing cards: %w", limited)))
	assert.False(t, ptcg.IsRateLimited(ptcg.ErrNotFound))
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	assert.True(t, ptcg.IsUnauthorized(&ptcg.ResponseError{StatusCode: http.StatusUnauthorized}))
	assert.True(t, ptcg.IsUnauthorized(&ptcg.ResponseError{StatusCode: http.StatusForbidden}))
	assert.False(t, ptcg.IsUnauthorized(&ptcg.ResponseError{StatusCode: http.StatusNotFound}))
	assert.False(t, ptcg.IsUnauthorized(errors.New("boom")))
}
