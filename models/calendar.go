package models

import "time"

// 日历视图类型
const (
	ViewMonth     = "month"
	ViewWeek      = "week"
	ViewDay       = "day"
	ViewTimetable = "timetable"
)

// 默认工作时段（时间表视图可见范围）
const (
	DefaultWorkingHoursStart = 8
	DefaultWorkingHoursEnd   = 22
)

// DayCell 月视图单元格，月首前的占位格为 nil
type DayCell struct {
	Day   int             `json:"day"`
	Date  time.Time       `json:"date"`
	Tasks []ScheduledTask `json:"tasks,omitempty"`
}

// TimetableSlot 时间表小时槽
type TimetableSlot struct {
	Date          time.Time       `json:"date"`
	Hour          int             `json:"hour"`
	Tasks         []ScheduledTask `json:"tasks"`
	IsWorkingHour bool            `json:"isWorkingHour"`
}

// TimeConflict 两个任务的时间重叠
type TimeConflict struct {
	Task1          ScheduledTask `json:"task1"`
	Task2          ScheduledTask `json:"task2"`
	OverlapMinutes int           `json:"overlapMinutes"`
}

// ProductivityStats 任务统计汇总
type ProductivityStats struct {
	TotalTasks          int            `json:"totalTasks"`
	CompletedTasks      int            `json:"completedTasks"`
	CompletionRate      float64        `json:"completionRate"`
	AverageTaskDuration float64        `json:"averageTaskDuration"` // 分钟
	BusiestDay          string         `json:"busiestDay"`
	MostProductiveHour  int            `json:"mostProductiveHour"`
	CategoryBreakdown   map[string]int `json:"categoryBreakdown"`
}

// ActivityStats 每个活动分类的累计秒数
type ActivityStats struct {
	ProductiveSeconds  int `json:"productiveSeconds"`
	DistractionSeconds int `json:"distractionSeconds"`
	NeutralSeconds     int `json:"neutralSeconds"`
}
