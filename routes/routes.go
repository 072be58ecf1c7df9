package routes

import (
	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/controllers"
	"FocusGo/middleware"
	"FocusGo/services"
)

func RegisterRoutes(r *gin.Engine, conf config.Config, goalService *services.GoalService) {
	goalController := controllers.NewGoalController(goalService)
	taskController := controllers.TaskController{}
	calendarController := controllers.CalendarController{}
	activityController := controllers.ActivityController{}
	chatController := controllers.ChatController{}
	settingsController := controllers.SettingsController{}
	statsController := controllers.StatsController{}
	syncController := controllers.SyncController{}

	// 本地单用户仪表盘，无需登录认证
	api := r.Group("/api/v1")
	{
		// 目标与撤销/重做
		api.GET("/goals", goalController.List)
		api.POST("/goals", goalController.Create)
		api.PUT("/goals/:id", goalController.Update)
		api.DELETE("/goals/:id", goalController.Delete)
		api.POST("/goals/undo", goalController.Undo)
		api.POST("/goals/redo", goalController.Redo)

		// 日程任务
		api.GET("/tasks", taskController.List)
		api.POST("/tasks", taskController.Create)
		api.PUT("/tasks/:id", taskController.Update)
		api.DELETE("/tasks/:id", taskController.Delete)
		api.PATCH("/tasks/:id/reschedule", taskController.Reschedule)

		// 日历视图
		api.GET("/calendar/month", calendarController.MonthView)
		api.GET("/calendar/week", calendarController.WeekView)
		api.GET("/calendar/day", calendarController.DayView)
		api.GET("/calendar/timetable", calendarController.Timetable)
		api.GET("/calendar/conflicts", calendarController.Conflicts)

		// 活动监控（只读）
		api.GET("/activities", activityController.List)
		api.GET("/activities/current", activityController.Current)

		// 对话历史
		api.GET("/chat/history", chatController.History)
		api.POST("/chat/messages", chatController.Append)
		api.DELETE("/chat/history", chatController.Clear)

		// 设置、主题与引导
		api.GET("/settings", settingsController.Get)
		api.PUT("/settings", settingsController.Update)
		api.GET("/theme", settingsController.GetTheme)
		api.PUT("/theme", settingsController.SetTheme)
		api.GET("/onboarding", settingsController.Onboarding)
		api.POST("/onboarding/complete", settingsController.CompleteOnboarding)

		// 统计
		api.GET("/stats/tasks", statsController.TaskStats)
		api.GET("/stats/activities", statsController.ActivityStats)

		// 导入导出
		api.GET("/sync/export", syncController.Export)
		api.POST("/sync/import", syncController.Import)
		api.DELETE("/sync/all", syncController.ClearAll)
	}

	// 内部路由组（浏览器扩展上报，携带共享令牌）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(conf.InternalAuthToken))
	{
		internal.POST("/activity/current", activityController.ReportCurrent)
		internal.POST("/activity/sessions", activityController.CompleteSession)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
