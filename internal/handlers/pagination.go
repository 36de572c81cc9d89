package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/database"
	"taskboard/internal/validation"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// parsePaginationParams reads page, size and offset from the query string,
// plus sort_by and sort_direction when sorting is requested.
func parsePaginationParams(c *gin.Context) (database.PaginationParams, *database.SortParams, error) {
	params := database.PaginationParams{Page: defaultPage, Size: defaultPageSize}

	fields := []struct {
		name string
		dst  *int
		min  int
	}{
		{"page", &params.Page, 1},
		{"size", &params.Size, 1},
		{"offset", &params.Offset, 0},
	}
	for _, field := range fields {
		raw := c.Query(field.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < field.min {
			return params, nil, validation.ErrInvalidParams.With("%s must be an integer of at least %d", field.name, field.min)
		}
		*field.dst = n
	}

	sortBy := c.Query("sort_by")
	if sortBy == "" {
		return params, nil, nil
	}
	direction := database.SortDirection(c.DefaultQuery("sort_direction", string(database.SortAscending)))
	if direction != database.SortAscending && direction != database.SortDescending {
		return params, nil, validation.ErrInvalidParams.With("sort_direction must be one of [asc desc]")
	}
	return params, &database.SortParams{SortBy: sortBy, SortDirection: direction}, nil
}
