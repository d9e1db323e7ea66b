package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ParamSingh05/task-management-system/config"
	"github.com/ParamSingh05/task-management-system/middleware"
	"github.com/ParamSingh05/task-management-system/routes"
	"github.com/ParamSingh05/task-management-system/session"
	"github.com/ParamSingh05/task-management-system/stores"
	"github.com/ParamSingh05/task-management-system/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
	}

	// 配置令牌编码模式
	utils.InitTokens(conf.TokenMode, conf.JWTSecret)

	// 选择会话存储后端
	var sessionStore session.Store
	if conf.SessionStore == "redis" {
		if err := config.InitRedis(conf); err != nil {
			log.Fatalf("无法初始化Redis: %v", err)
		}
		sessionStore = session.NewRedisStore(config.RedisClient)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	userStore := stores.NewUserStore(config.DB)
	taskStore := stores.NewTaskStore(config.DB)
	routes.RegisterRoutes(r, sessionStore, userStore, taskStore)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		config.Logger.Infow("服务器启动", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("正在关闭服务器")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	config.Logger.Infow("服务器已关闭")
}
