package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/services"
	"FocusGo/utils"
)

type TaskController struct{}

// List 获取全部任务（重复任务只返回模板，实例由日历视图展开）
func (tc *TaskController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": config.Store.GetTasks()})
}

// Create 创建任务，创建边界校验失败时返回字段级错误
func (tc *TaskController) Create(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	if errs := services.ValidateNewTask(req.Title, req.StartTime, req.EndTime); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	task := models.ScheduledTask{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Priority:    req.Priority,
		Status:      req.Status,
		LinkedGoals: req.LinkedGoals,
		Recurring:   req.Recurring,
	}

	created, err := config.Store.AddTask(task)
	if err != nil {
		handleWriteError(c, err, "创建任务失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": created})
}

// Update 部分更新任务
func (tc *TaskController) Update(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	id := c.Param("id")
	existing, found := findTask(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务不存在"})
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}
	if req.Color != nil {
		existing.Color = *req.Color
	}
	if req.Priority != nil {
		existing.Priority = *req.Priority
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.LinkedGoals != nil {
		existing.LinkedGoals = req.LinkedGoals
	}
	if req.Recurring != nil {
		existing.Recurring = req.Recurring
	}

	if errs := services.ValidateNewTask(existing.Title, existing.StartTime, existing.EndTime); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	updated, err := config.Store.UpdateTask(id, existing)
	if err != nil {
		handleWriteError(c, err, "更新任务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated})
}

// Delete 删除任务
func (tc *TaskController) Delete(c *gin.Context) {
	if err := config.Store.DeleteTask(c.Param("id")); err != nil {
		handleWriteError(c, err, "删除任务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "任务已删除"})
}

// Reschedule 拖拽改期：移动到指定日期的整点，时长保持不变
func (tc *TaskController) Reschedule(c *gin.Context) {
	var req models.RescheduleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}
	if req.Hour < 0 || req.Hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": models.FieldErrors{"hour": "Hour must be within 0-23"}})
		return
	}

	id := c.Param("id")
	existing, found := findTask(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务不存在"})
		return
	}

	moved := services.Reschedule(existing, req.Hour, req.Date)
	updated, err := config.Store.UpdateTask(id, moved)
	if err != nil {
		handleWriteError(c, err, "任务改期失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated})
}

func findTask(id string) (models.ScheduledTask, bool) {
	for _, t := range config.Store.GetTasks() {
		if t.ID == id {
			return t, true
		}
	}
	return models.ScheduledTask{}, false
}
