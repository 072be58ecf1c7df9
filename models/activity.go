package models

import "time"

// 活动分类（由浏览器扩展上报）
const (
	ActivityProductive  = "productive"
	ActivityDistraction = "distraction"
	ActivityNeutral     = "neutral"
)

// Activity 浏览活动记录，扩展写入，本体只读消费
type Activity struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Domain    string     `json:"domain"`
	Category  string     `json:"category"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"` // 进行中的会话为空
	Duration  int        `json:"duration"`          // 秒
	Title     string     `json:"title,omitempty"`
}
