package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/utils"
)

type ActivityController struct{}

// List 获取活动记录集合
func (ac *ActivityController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": config.Store.GetActivities()})
}

// Current 获取扩展上报的进行中活动，不存在时为 null
func (ac *ActivityController) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity": config.Store.GetCurrentActivity()})
}

// ReportCurrent 内部接口：扩展覆写当前活动
func (ac *ActivityController) ReportCurrent(c *gin.Context) {
	activity, ok := bindActivity(c)
	if !ok {
		return
	}
	if err := config.Store.SetCurrentActivity(activity); err != nil {
		handleWriteError(c, err, "写入当前活动失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// CompleteSession 内部接口：扩展追加一条已结束的会话并清除当前活动
func (ac *ActivityController) CompleteSession(c *gin.Context) {
	activity, ok := bindActivity(c)
	if !ok {
		return
	}
	if err := config.Store.AddActivity(activity); err != nil {
		handleWriteError(c, err, "保存活动记录失败")
		return
	}
	if err := config.Store.ClearCurrentActivity(); err != nil {
		config.Logger.Warnw("清除当前活动失败", "error", err)
	}
	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

func bindActivity(c *gin.Context) (models.Activity, bool) {
	var req models.ReportActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return models.Activity{}, false
	}

	activity := models.Activity{
		ID:        utils.GenerateID(),
		URL:       req.URL,
		Domain:    req.Domain,
		Category:  req.Category,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
		Title:     req.Title,
	}
	if errs := models.ValidateActivity(&activity); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return models.Activity{}, false
	}
	return activity, true
}
