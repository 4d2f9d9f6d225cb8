package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcgkit-io/ptcg/internal/constants"
)

func TestListOptions_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ListOptions{}.Validate())
	assert.NoError(t, ListOptions{Page: 3}.Validate())
	assert.ErrorIs(t, ListOptions{Page: -1}.Validate(), constants.ErrInvalidPage)
}

func TestQueryParamsFromListOptions(t *testing.T) {
	t.Parallel()

	params := QueryParamsFromListOptions(ListOptions{Page: 2, PageSize: 25})
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 25, params.PageSize)

	empty := QueryParamsFromListOptions(ListOptions{})
	assert.Zero(t, empty.Page)
	assert.Zero(t, empty.PageSize)
}

func TestStringOrNA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, StringOrNA(""))
	assert.Equal(t, "xy1", StringOrNA("xy1"))
}

func TestValidateConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))

	assert.NoError(t, ValidateConfigPath(path))

	err := ValidateConfigPath(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, constants.ErrConfigNotFound)

	err = ValidateConfigPath("../../etc/passwd")
	assert.ErrorIs(t, err, constants.ErrDirectoryTraversalDetected)

	err = ValidateConfigPath(dir)
	assert.ErrorIs(t, err, constants.ErrNotRegularFile)
}
