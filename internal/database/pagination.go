package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Numeric is the mongo sort value for d.
func (d SortDirection) Numeric() int {
	if d == SortDescending {
		return -1
	}
	return 1
}

type PaginationParams struct {
	Page   int `json:"page" validate:"min=1"`
	Size   int `json:"size" validate:"min=0"`
	Offset int `json:"offset" validate:"min=0"`
}

type SortParams struct {
	SortBy        string        `json:"sort_by" validate:"required"`
	SortDirection SortDirection `json:"sort_direction" validate:"required,oneof=asc desc"`
}

type PaginationResult[T any] struct {
	Items            []T              `json:"items"`
	PaginationParams PaginationParams `json:"pagination_params"`
	TotalCount       int64            `json:"total_count"`
	TotalPages       int64            `json:"total_pages"`
}

// CalculatePaginationValues returns how many documents to skip and how many
// pages totalCount spans. A size of zero yields zero pages.
func CalculatePaginationValues(params PaginationParams, totalCount int64) (skip int64, totalPages int64) {
	size := int64(params.Size)
	skip = int64(params.Page-1)*size + int64(params.Offset)
	if size > 0 {
		totalPages = (totalCount + size - 1) / size
	}
	return skip, totalPages
}

// SortDocument orders by the requested field and then by _id in the same
// direction, which keeps page boundaries stable when the field has ties.
func SortDocument(sort *SortParams) bson.D {
	if sort == nil {
		return nil
	}
	dir := sort.SortDirection.Numeric()
	return bson.D{{Key: sort.SortBy, Value: dir}, {Key: "_id", Value: dir}}
}

// FindPaginated counts and fetches one page of coll matching filter.
func FindPaginated[T any](ctx context.Context, coll *mongo.Collection, filter any, params PaginationParams, sort *SortParams) (PaginationResult[T], error) {
	totalCount, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return PaginationResult[T]{}, err
	}

	skip, totalPages := CalculatePaginationValues(params, totalCount)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(params.Size))
	if sortDoc := SortDocument(sort); sortDoc != nil {
		findOptions.SetSort(sortDoc)
	}

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return PaginationResult[T]{}, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return PaginationResult[T]{}, err
	}

	return PaginationResult[T]{
		Items:            items,
		PaginationParams: params,
		TotalCount:       totalCount,
		TotalPages:       totalPages,
	}, nil
}
