package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/models"
	"FocusGo/services"
)

type GoalController struct {
	goalService *services.GoalService
}

func NewGoalController(goalService *services.GoalService) *GoalController {
	return &GoalController{goalService: goalService}
}

func (gc *GoalController) goalsResponse() models.GoalsResponse {
	return models.GoalsResponse{
		Goals:   gc.goalService.List(),
		CanUndo: gc.goalService.CanUndo(),
		CanRedo: gc.goalService.CanRedo(),
	}
}

// List 获取目标集合及撤销状态
func (gc *GoalController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gc.goalsResponse())
}

// Create 创建目标
func (gc *GoalController) Create(c *gin.Context) {
	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	goal, err := gc.goalService.Add(req)
	if err != nil {
		handleWriteError(c, err, "创建目标失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// Update 部分更新目标
func (gc *GoalController) Update(c *gin.Context) {
	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	goal, err := gc.goalService.Update(c.Param("id"), req)
	if err != nil {
		handleWriteError(c, err, "更新目标失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// Delete 删除目标
func (gc *GoalController) Delete(c *gin.Context) {
	if err := gc.goalService.Delete(c.Param("id")); err != nil {
		handleWriteError(c, err, "删除目标失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "目标已删除"})
}

// Undo 撤销最近一次目标变更
func (gc *GoalController) Undo(c *gin.Context) {
	if _, err := gc.goalService.Undo(); err != nil {
		if errors.Is(err, services.ErrNothingToUndo) {
			c.JSON(http.StatusConflict, gin.H{"error": "没有可撤销的操作"})
			return
		}
		handleWriteError(c, err, "撤销失败")
		return
	}
	c.JSON(http.StatusOK, gc.goalsResponse())
}

// Redo 重做最近一次撤销
func (gc *GoalController) Redo(c *gin.Context) {
	if _, err := gc.goalService.Redo(); err != nil {
		if errors.Is(err, services.ErrNothingToRedo) {
			c.JSON(http.StatusConflict, gin.H{"error": "没有可重做的操作"})
			return
		}
		handleWriteError(c, err, "重做失败")
		return
	}
	c.JSON(http.StatusOK, gc.goalsResponse())
}
