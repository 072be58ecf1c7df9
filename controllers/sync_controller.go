package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
)

type SyncController struct{}

// Export 导出全部数据为一份 JSON 文档
func (sc *SyncController) Export(c *gin.Context) {
	doc, err := config.Store.ExportAll()
	if err != nil {
		config.Logger.Errorw("导出数据失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出数据失败"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="focusgo-export.json"`)
	c.Data(http.StatusOK, "application/json", []byte(doc))
}

// Import 导入导出文档；顶层解析失败时不改动任何数据
func (sc *SyncController) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取请求体失败"})
		return
	}

	result := config.Store.ImportAll(string(body))
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClearAll 清空全部数据
func (sc *SyncController) ClearAll(c *gin.Context) {
	if err := config.Store.ClearAll(); err != nil {
		handleWriteError(c, err, "清空数据失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "数据已清空"})
}
