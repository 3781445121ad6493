// internal/domain/pagination_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        PageRequest
	}{
		{"Defaults", 0, 0, PageRequest{Page: 1, Limit: 10}},
		{"NegativePage", -4, 20, PageRequest{Page: 1, Limit: 20}},
		{"NegativeLimit", 3, -1, PageRequest{Page: 3, Limit: 10}},
		{"LimitCap", 1, 101, PageRequest{Page: 1, Limit: 100}},
		{"LimitAtCap", 1, 100, PageRequest{Page: 1, Limit: 100}},
		{"MinimumLimit", 7, 1, PageRequest{Page: 7, Limit: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePage(tc.page, tc.limit))
		})
	}
}

func TestParsePageParams(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 1, Limit: 10}, ParsePageParams("", ""))
	assert.Equal(t, PageRequest{Page: 1, Limit: 10}, ParsePageParams("abc", "ten"))
	assert.Equal(t, PageRequest{Page: 1, Limit: 10}, ParsePageParams("1.5", "2.5"))
	assert.Equal(t, PageRequest{Page: 4, Limit: 25}, ParsePageParams(" 4 ", "25"))
	assert.Equal(t, PageRequest{Page: 2, Limit: 100}, ParsePageParams("2", "1000"))
}

func TestPageRequestSkip(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, 40, PageRequest{Page: 5, Limit: 10}.Skip())
	assert.Equal(t, 2, PageRequest{Page: 3, Limit: 1}.Skip())
}

func TestNewPageInfo(t *testing.T) {
	cases := []struct {
		total, limit int64
		wantPages    int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 100, 1},
		{101, 100, 2},
		{7, 1, 7},
	}
	for _, tc := range cases {
		info := NewPageInfo(PageRequest{Page: 1, Limit: int(tc.limit)}, tc.total)
		assert.Equal(t, tc.wantPages, info.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.Equal(t, tc.total, info.Total)
	}
}
