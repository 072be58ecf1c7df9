package models

import (
	"time"
)

// 任务分类
const (
	TaskCategoryStudy    = "study"
	TaskCategoryWork     = "work"
	TaskCategoryPersonal = "personal"
	TaskCategoryBreak    = "break"
	TaskCategoryHealth   = "health"
	TaskCategoryCustom   = "custom"
)

// 任务优先级
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// 任务状态
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// 重复频率
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// 存储读取时的默认值
const (
	DefaultTaskCategory = TaskCategoryPersonal
	DefaultTaskPriority = PriorityMedium
	DefaultTaskColor    = "#4ECDC4"
)

// RecurringPattern 重复规则，从模板任务的开始时间按间隔展开实例
type RecurringPattern struct {
	Frequency   string      `json:"frequency"` // daily, weekly, monthly, yearly
	Interval    int         `json:"interval"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	Occurrences int         `json:"occurrences,omitempty"`
	DaysOfWeek  []int       `json:"daysOfWeek,omitempty"` // 0=周日
	Exceptions  []time.Time `json:"exceptions,omitempty"` // 跳过的日期
}

// ScheduledTask 日程任务模型（完整形态）
type ScheduledTask struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     time.Time         `json:"endTime"`
	Color       string            `json:"color"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	LinkedGoals []string          `json:"linkedGoals"`
	Recurring   *RecurringPattern `json:"recurring,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// SimpleTask 旧版精简存储形态，读取时兼容展开为 ScheduledTask
type SimpleTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Category    string    `json:"category,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsRecurring bool      `json:"isRecurring,omitempty"`
	Completed   bool      `json:"completed,omitempty"`
}

// Duration 任务时长
func (t *ScheduledTask) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}

// IsRecurring 是否为重复任务模板
func (t *ScheduledTask) IsRecurring() bool {
	return t.Recurring != nil
}
