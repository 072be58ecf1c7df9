package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/middleware"
	"FocusGo/routes"
	"FocusGo/services"
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
		return
	}

	// 初始化存储
	if err := config.InitStorage(conf); err != nil {
		log.Fatalf("无法初始化存储: %v", err)
		return
	}

	// 创建目标服务（撤销栈只存在于进程内）
	goalService := services.NewGoalService(config.Store)

	// 启动任务提醒
	reminder := services.NewReminderService(
		config.Store,
		config.Logger,
		time.Duration(conf.ReminderLookaheadMinutes)*time.Minute,
	)
	if conf.ReminderIntervalSeconds > 0 {
		if err := reminder.Start(time.Duration(conf.ReminderIntervalSeconds) * time.Second); err != nil {
			log.Fatalf("无法启动任务提醒: %v", err)
		}
		defer reminder.Stop()
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
	routes.RegisterRoutes(r, conf, goalService)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")
}
