package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/utils"
)

type ChatController struct{}

// History 获取伴侣对话历史
func (cc *ChatController) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": config.Store.GetChatHistory()})
}

// Append 追加一条对话消息，回复内容由前端的规则引擎生成
func (cc *ChatController) Append(c *gin.Context) {
	var req models.AppendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	message := models.ChatMessage{
		ID:        utils.GenerateID(),
		Role:      req.Role,
		Content:   req.Content,
		Timestamp: time.Now(),
	}
	if err := config.Store.AppendChatMessage(message); err != nil {
		handleWriteError(c, err, "保存对话消息失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// Clear 清空对话历史
func (cc *ChatController) Clear(c *gin.Context) {
	if err := config.Store.ClearChatHistory(); err != nil {
		handleWriteError(c, err, "清空对话历史失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "对话历史已清空"})
}
