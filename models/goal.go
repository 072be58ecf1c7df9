package models

import "time"

// 目标分类
const (
	GoalCategoryLeetcode     = "leetcode"
	GoalCategoryApplications = "applications"
	GoalCategoryLearning     = "learning"
	GoalCategoryOther        = "other"
)

// Goal 量化目标模型
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Target      int        `json:"target"`  // 1 ~ 10000
	Current     int        `json:"current"` // 允许临时超过 target
	Unit        string     `json:"unit"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
}
