package middleware

import (
	"net/http"
	"time"

	"github.com/ParamSingh05/task-management-system/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupMiddleware 配置中间件
func SetupMiddleware(r *gin.Engine) {
	// CORS中间件
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 日志中间件
	r.Use(RequestLogger())

	// 错误恢复中间件: 任何未捕获的panic都转换为500响应, 不中断进程
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		config.Logger.Errorw("请求处理panic",
			"error", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	}))
}
