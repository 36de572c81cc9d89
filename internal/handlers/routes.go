package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/middleware"
)

type Dependencies struct {
	Accounts Accounts
	Auth     Authenticator
	Tasks    Tasks
	Comments Comments
	Ping     Pinger
	Log      *zap.Logger
}

// RegisterRoutes mounts the API on r.
func RegisterRoutes(r gin.IRouter, deps Dependencies) {
	log := deps.Log.Named("api")
	guard := middleware.AccessAuth(deps.Auth, deps.Log)

	r.GET("/health", Health(deps.Ping, log))

	r.POST("/accounts", CreateAccount(deps.Accounts, log))
	r.PATCH("/accounts/:id", UpdateAccount(deps.Accounts, deps.Auth, log))
	r.POST("/access-tokens", CreateAccessToken(deps.Accounts, deps.Auth, log))
	r.POST("/password-reset-tokens", CreatePasswordResetToken(deps.Accounts, deps.Auth, log))

	accounts := r.Group("/accounts/:id")
	accounts.Use(guard)
	{
		accounts.GET("", GetAccount(deps.Accounts, log))
		accounts.DELETE("", DeleteAccount(deps.Accounts, log))

		accounts.GET("/notification-preferences", GetNotificationPreferences(deps.Accounts, log))
		accounts.PATCH("/notification-preferences", UpdateNotificationPreferences(deps.Accounts, log))

		accounts.GET("/tasks", ListTasks(deps.Tasks, log))
		accounts.POST("/tasks", CreateTask(deps.Tasks, log))
		accounts.GET("/tasks/:task_id", GetTask(deps.Tasks, log))
		accounts.PATCH("/tasks/:task_id", UpdateTask(deps.Tasks, log))
		accounts.DELETE("/tasks/:task_id", DeleteTask(deps.Tasks, log))

		accounts.GET("/tasks/:task_id/comments", ListComments(deps.Comments, log))
		accounts.POST("/tasks/:task_id/comments", CreateComment(deps.Comments, log))
		accounts.GET("/tasks/:task_id/comments/:comment_id", GetComment(deps.Comments, log))
		accounts.PATCH("/tasks/:task_id/comments/:comment_id", UpdateComment(deps.Comments, log))
		accounts.DELETE("/tasks/:task_id/comments/:comment_id", DeleteComment(deps.Comments, log))
	}
}
