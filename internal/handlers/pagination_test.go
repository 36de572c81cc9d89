package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/database"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationParamsDefaults(t *testing.T) {
	params, sort, err := parsePaginationParams(contextWithQuery(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params != (database.PaginationParams{Page: 1, Size: 20}) {
		t.Fatalf("unexpected defaults %+v", params)
	}
	if sort != nil {
		t.Fatalf("expected no sort, got %+v", sort)
	}
}

func TestParsePaginationParamsOffsetAndSort(t *testing.T) {
	params, sort, err := parsePaginationParams(contextWithQuery("page=3&size=10&offset=2&sort_by=created_at"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params != (database.PaginationParams{Page: 3, Size: 10, Offset: 2}) {
		t.Fatalf("unexpected params %+v", params)
	}
	if sort == nil || sort.SortBy != "created_at" || sort.SortDirection != database.SortAscending {
		t.Fatalf("unexpected sort %+v", sort)
	}
}

func TestParsePaginationParamsRejectsInvalid(t *testing.T) {
	for _, query := range []string{"page=0", "size=0", "size=abc", "offset=-1", "sort_by=title&sort_direction=sideways"} {
		if _, _, err := parsePaginationParams(contextWithQuery(query)); err == nil {
			t.Fatalf("expected error for %q", query)
		}
	}
}
