package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaFor(t *testing.T) {
	params := &Params{Page: 2, Limit: 20, Offset: 20}
	meta := MetaFor(params, 45)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(45), meta.Total)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestMetaForExactPageBoundary(t *testing.T) {
	params := &Params{Page: 2, Limit: 10, Offset: 10}
	meta := MetaFor(params, 20)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestMetaForEmpty(t *testing.T) {
	params := &Params{Page: 1, Limit: 20}
	meta := MetaFor(params, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
