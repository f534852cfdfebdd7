package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults when unset", page: 0, pageSize: 0, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "negative page folds to first", page: -3, pageSize: 9, wantPage: 1, wantPageSize: 9},
		{name: "zero size folds to default", page: 2, pageSize: 0, wantPage: 2, wantPageSize: DefaultPageSize},
		{name: "valid values pass through", page: 4, pageSize: 20, wantPage: 4, wantPageSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ListFilter{Page: tt.page, PageSize: tt.pageSize}
			f.Normalize()
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantPageSize, f.PageSize)
		})
	}
}

func TestListFilterOffset(t *testing.T) {
	f := ListFilter{Page: 3, PageSize: 9}
	assert.Equal(t, 18, f.Offset())

	f = ListFilter{Page: 1, PageSize: 9}
	assert.Equal(t, 0, f.Offset())
}
