package routes

import (
	"net/http"
	"time"

	"github.com/ParamSingh05/task-management-system/controllers"
	"github.com/ParamSingh05/task-management-system/middleware"
	"github.com/ParamSingh05/task-management-system/session"
	"github.com/ParamSingh05/task-management-system/stores"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册路由
func RegisterRoutes(r *gin.Engine, sessions session.Store, users *stores.UserStore, tasks *stores.TaskStore) {
	authController := controllers.NewAuthController(users, sessions)
	taskController := controllers.NewTaskController(tasks)

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Task Management API is running",
			"timestamp": time.Now(),
		})
	})

	// 公开路由（无需认证）
	public := r.Group("/api/auth")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// 需要认证的路由
	auth := middleware.AuthMiddleware(sessions, users)

	privateAuth := r.Group("/api/auth")
	privateAuth.Use(auth)
	{
		privateAuth.POST("/logout", authController.Logout)
		privateAuth.GET("/me", authController.Me)
	}

	taskRoutes := r.Group("/api/tasks")
	taskRoutes.Use(auth)
	{
		taskRoutes.GET("", taskController.GetAllTasks)
		taskRoutes.GET("/stats", taskController.GetTaskStats)
		taskRoutes.GET("/:id", taskController.GetTaskByID)
		taskRoutes.POST("", taskController.CreateTask)
		taskRoutes.PUT("/:id", taskController.UpdateTask)
		taskRoutes.DELETE("/:id", taskController.DeleteTask)
	}

	// 未匹配路由统一返回404信封
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
