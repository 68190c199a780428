package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationOptionsNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   PaginationOptions
		want PaginationOptions
	}{
		{"defaults", PaginationOptions{}, PaginationOptions{Page: 1, PageSize: 20}},
		{"negative page", PaginationOptions{Page: -3, PageSize: 10}, PaginationOptions{Page: 1, PageSize: 10}},
		{"oversized page size", PaginationOptions{Page: 2, PageSize: 500}, PaginationOptions{Page: 2, PageSize: 20}},
		{"valid untouched", PaginationOptions{Page: 4, PageSize: 50}, PaginationOptions{Page: 4, PageSize: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestPaginationOptionsOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationOptions{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PaginationOptions{Page: 3, PageSize: 20}.Offset())
}

func TestNewPaginated(t *testing.T) {
	result := NewPaginated([]string{"a", "b"}, 2, 2, 5)

	assert.Equal(t, []string{"a", "b"}, result.Items)
	assert.Equal(t, Page{Number: 2, Size: 2, Total: 5, TotalPages: 3}, result.Page)
	assert.False(t, result.Empty)
}

func TestNewPaginatedEmpty(t *testing.T) {
	result := NewPaginated([]string{}, 1, 20, 0)

	assert.True(t, result.Empty)
	assert.Equal(t, 0, result.Page.TotalPages)
}
