package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/task"
)

type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ListTasks(tasks Tasks, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id/tasks"
		defer handlePanic(c, log, route)

		pagination, sort, err := parsePaginationParams(c)
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := tasks.GetPaginated(ctx, task.GetPaginatedTasksParams{
			AccountID:  c.Param("id"),
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

func CreateTask(tasks Tasks, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /accounts/:id/tasks"
		defer handlePanic(c, log, route)

		var req TaskRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		created, err := tasks.Create(ctx, task.CreateTaskParams{
			AccountID:   c.Param("id"),
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetTask(tasks Tasks, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id/tasks/:task_id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		found, err := tasks.Get(ctx, task.GetTaskParams{AccountID: c.Param("id"), TaskID: c.Param("task_id")})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func UpdateTask(tasks Tasks, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /accounts/:id/tasks/:task_id"
		defer handlePanic(c, log, route)

		var req TaskRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		updated, err := tasks.Update(ctx, task.UpdateTaskParams{
			AccountID:   c.Param("id"),
			TaskID:      c.Param("task_id"),
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteTask(tasks Tasks, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /accounts/:id/tasks/:task_id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := tasks.Delete(ctx, task.DeleteTaskParams{AccountID: c.Param("id"), TaskID: c.Param("task_id")})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
