package models

import "time"

// CreateGoalRequest 创建目标请求（无 ID，由服务端生成）
type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Target      int        `json:"target" binding:"required"`
	Current     int        `json:"current"`
	Unit        string     `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
	Category    string     `json:"category" binding:"required"`
	Completed   bool       `json:"completed"`
}

// UpdateGoalRequest 更新目标请求，空指针字段不变
type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Target      *int       `json:"target"`
	Current     *int       `json:"current"`
	Unit        *string    `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
}

// CreateTaskRequest 创建日程任务请求
type CreateTaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	StartTime   time.Time         `json:"startTime" binding:"required"`
	EndTime     time.Time         `json:"endTime" binding:"required"`
	Color       string            `json:"color"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	LinkedGoals []string          `json:"linkedGoals"`
	Recurring   *RecurringPattern `json:"recurring"`
}

// UpdateTaskRequest 更新任务请求，空指针字段不变
type UpdateTaskRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	StartTime   *time.Time        `json:"startTime"`
	EndTime     *time.Time        `json:"endTime"`
	Color       *string           `json:"color"`
	Priority    *string           `json:"priority"`
	Status      *string           `json:"status"`
	LinkedGoals []string          `json:"linkedGoals"`
	Recurring   *RecurringPattern `json:"recurring"`
}

// RescheduleTaskRequest 拖拽改期请求：移到某天的某个整点，时长不变
type RescheduleTaskRequest struct {
	Date time.Time `json:"date" binding:"required"`
	Hour int       `json:"hour"`
}

// AppendChatMessageRequest 追加对话消息请求
type AppendChatMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ReportActivityRequest 扩展上报活动请求
type ReportActivityRequest struct {
	URL       string     `json:"url" binding:"required"`
	Domain    string     `json:"domain" binding:"required"`
	Category  string     `json:"category" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int        `json:"duration"`
	Title     string     `json:"title"`
}

// SetThemeRequest 主题切换请求
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"` // light 或 dark
}
