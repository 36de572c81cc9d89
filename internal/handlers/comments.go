package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/task"
)

type CommentRequest struct {
	Content string `json:"content"`
}

func ListComments(comments Comments, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id/tasks/:task_id/comments"
		defer handlePanic(c, log, route)

		pagination, sort, err := parsePaginationParams(c)
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := comments.GetPaginated(ctx, task.GetPaginatedCommentsParams{
			AccountID:  c.Param("id"),
			TaskID:     c.Param("task_id"),
			Pagination: pagination,
			Sort:       sort,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func CreateComment(comments Comments, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /accounts/:id/tasks/:task_id/comments"
		defer handlePanic(c, log, route)

		var req CommentRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		created, err := comments.Create(ctx, task.CreateCommentParams{
			AccountID: c.Param("id"),
			TaskID:    c.Param("task_id"),
			Content:   req.Content,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetComment(comments Comments, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id/tasks/:task_id/comments/:comment_id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		found, err := comments.Get(ctx, task.GetCommentParams{
			AccountID: c.Param("id"),
			TaskID:    c.Param("task_id"),
			CommentID: c.Param("comment_id"),
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func UpdateComment(comments Comments, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /accounts/:id/tasks/:task_id/comments/:comment_id"
		defer handlePanic(c, log, route)

		var req CommentRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		updated, err := comments.Update(ctx, task.UpdateCommentParams{
			AccountID: c.Param("id"),
			TaskID:    c.Param("task_id"),
			CommentID: c.Param("comment_id"),
			Content:   req.Content,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteComment(comments Comments, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /accounts/:id/tasks/:task_id/comments/:comment_id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := comments.Delete(ctx, task.DeleteCommentParams{
			AccountID: c.Param("id"),
			TaskID:    c.Param("task_id"),
			CommentID: c.Param("comment_id"),
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
