package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/storage"
)

// handleWriteError 统一的写入错误映射：
// 字段校验错误 400，记录不存在 404，容量不足 507，其余 500
func handleWriteError(c *gin.Context, err error, msg string) {
	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}
	if errors.Is(err, storage.ErrQuotaExceeded) {
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": "存储空间不足"})
		return
	}
	config.Logger.Errorw(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
