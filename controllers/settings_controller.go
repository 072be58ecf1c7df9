package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
)

type SettingsController struct{}

// Get 获取设置，损坏的数据已在存储层回退为默认值
func (sc *SettingsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": config.Store.GetSettings()})
}

// Update 整体替换设置，非法设置在 API 边界直接拒绝
func (sc *SettingsController) Update(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}
	if errs := models.ValidateSettings(&settings); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := config.Store.SaveSettings(settings); err != nil {
		handleWriteError(c, err, "保存设置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// GetTheme 获取主题
func (sc *SettingsController) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": config.Store.GetTheme()})
}

// SetTheme 切换主题
func (sc *SettingsController) SetTheme(c *gin.Context) {
	var req models.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}
	if err := config.Store.SetTheme(req.Theme); err != nil {
		handleWriteError(c, err, "保存主题失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

// Onboarding 获取引导完成状态
func (sc *SettingsController) Onboarding(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"completed": config.Store.IsOnboardingComplete()})
}

// CompleteOnboarding 标记引导完成
func (sc *SettingsController) CompleteOnboarding(c *gin.Context) {
	if err := config.Store.SetOnboardingComplete(); err != nil {
		handleWriteError(c, err, "保存引导状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": true})
}
