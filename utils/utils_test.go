package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(101, 2, 10)
	assert.Equal(t, 101, p.TotalItems)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 11, p.TotalPages)
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := CreatePagination(10, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}
