package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/services"
)

type StatsController struct{}

// TaskStats 任务统计汇总
func (sc *StatsController) TaskStats(c *gin.Context) {
	stats := services.ComputeProductivityStats(config.Store.GetTasks())
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ActivityStats 活动分类时长统计
func (sc *StatsController) ActivityStats(c *gin.Context) {
	stats := services.ComputeActivityStats(config.Store.GetActivities())
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
