package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCalculatePaginationValues(t *testing.T) {
	skip, pages := CalculatePaginationValues(PaginationParams{Page: 1, Size: 3}, 5)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(2), pages)

	skip, pages = CalculatePaginationValues(PaginationParams{Page: 2, Size: 3}, 5)
	assert.Equal(t, int64(3), skip)
	assert.Equal(t, int64(2), pages)

	skip, _ = CalculatePaginationValues(PaginationParams{Page: 3, Size: 10, Offset: 4}, 0)
	assert.Equal(t, int64(24), skip)
}

func TestCalculatePaginationValuesZeroSize(t *testing.T) {
	skip, pages := CalculatePaginationValues(PaginationParams{Page: 4, Size: 0, Offset: 2}, 100)
	assert.Equal(t, int64(2), skip)
	assert.Equal(t, int64(0), pages)
}

func TestTotalPagesIsCeiling(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for total := int64(0); total <= 50; total++ {
			_, pages := CalculatePaginationValues(PaginationParams{Page: 1, Size: size}, total)
			want := total / int64(size)
			if total%int64(size) != 0 {
				want++
			}
			if pages != want {
				t.Fatalf("total=%d size=%d: expected %d pages, got %d", total, size, want, pages)
			}
		}
	}
}

func TestSortDocument(t *testing.T) {
	assert.Nil(t, SortDocument(nil))
	assert.Equal(t,
		bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		SortDocument(&SortParams{SortBy: "created_at", SortDirection: SortDescending}),
	)
	assert.Equal(t,
		bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}},
		SortDocument(&SortParams{SortBy: "title", SortDirection: SortAscending}),
	)
}

func TestParseObjectID(t *testing.T) {
	oid, ok := ParseObjectID("507f1f77bcf86cd799439011")
	assert.True(t, ok)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())

	_, ok = ParseObjectID("not-an-id")
	assert.False(t, ok)
}
