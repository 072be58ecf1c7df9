package models

import "time"

// ExportDocument 全量导出文档，version 固定为 1.0.0
type ExportDocument struct {
	Goals       []Goal          `json:"goals"`
	Activities  []Activity      `json:"activities"`
	Tasks       []ScheduledTask `json:"tasks"`
	Settings    Settings        `json:"settings"`
	ChatHistory []ChatMessage   `json:"chatHistory"`
	ExportedAt  string          `json:"exportedAt"` // ISO-8601
	Version     string          `json:"version"`
}

// ImportResult 导入结果
type ImportResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// MonthViewResponse 月视图响应
type MonthViewResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Cells []*DayCell `json:"cells"` // 前导占位格为 null
}

// DayViewResponse 日视图响应，任务按开始时间升序
type DayViewResponse struct {
	Date  time.Time       `json:"date"`
	Tasks []ScheduledTask `json:"tasks"`
}

// WeekViewResponse 周视图响应：从周日开始的连续 7 天
type WeekViewResponse struct {
	Days []DayViewResponse `json:"days"`
}

// TimetableResponse 时间表视图响应
type TimetableResponse struct {
	Date  time.Time       `json:"date"`
	Slots []TimetableSlot `json:"slots"`
}

// GoalsResponse 目标集合响应，附带撤销状态
type GoalsResponse struct {
	Goals   []Goal `json:"goals"`
	CanUndo bool   `json:"canUndo"`
	CanRedo bool   `json:"canRedo"`
}
