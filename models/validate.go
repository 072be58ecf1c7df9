package models

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FieldErrors 字段级校验错误，nil 表示通过
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation failed: %v", map[string]string(e))
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var taskCategories = map[string]bool{
	TaskCategoryStudy:    true,
	TaskCategoryWork:     true,
	TaskCategoryPersonal: true,
	TaskCategoryBreak:    true,
	TaskCategoryHealth:   true,
	TaskCategoryCustom:   true,
}

var priorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

var statuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

var frequencies = map[string]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
	FrequencyYearly:  true,
}

var goalCategories = map[string]bool{
	GoalCategoryLeetcode:     true,
	GoalCategoryApplications: true,
	GoalCategoryLearning:     true,
	GoalCategoryOther:        true,
}

var activityCategories = map[string]bool{
	ActivityProductive:  true,
	ActivityDistraction: true,
	ActivityNeutral:     true,
}

// IsTaskCategory 是否为合法任务分类
func IsTaskCategory(category string) bool {
	return taskCategories[category]
}

// ValidateGoal 校验目标记录
func ValidateGoal(g *Goal) FieldErrors {
	errs := FieldErrors{}
	if g.ID == "" {
		errs["id"] = "Goal ID is required"
	}
	if g.Title == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(g.Title) > 100 {
		errs["title"] = "Title must be less than 100 characters"
	}
	if utf8.RuneCountInString(g.Description) > 500 {
		errs["description"] = "Description must be less than 500 characters"
	}
	if g.Target < 1 {
		errs["target"] = "Target must be at least 1"
	} else if g.Target > 10000 {
		errs["target"] = "Target must be less than 10,000"
	}
	if g.Current < 0 {
		errs["current"] = "Current progress cannot be negative"
	}
	if utf8.RuneCountInString(g.Unit) > 50 {
		errs["unit"] = "Unit must be less than 50 characters"
	}
	if !goalCategories[g.Category] {
		errs["category"] = "Invalid goal category"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateScheduledTask 校验完整形态任务
func ValidateScheduledTask(t *ScheduledTask) FieldErrors {
	errs := FieldErrors{}
	if t.ID == "" {
		errs["id"] = "Task ID is required"
	}
	if t.Title == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(t.Title) > 200 {
		errs["title"] = "Title must be less than 200 characters"
	}
	if utf8.RuneCountInString(t.Description) > 1000 {
		errs["description"] = "Description must be less than 1000 characters"
	}
	if !taskCategories[t.Category] {
		errs["category"] = "Invalid task category"
	}
	if t.StartTime.IsZero() {
		errs["startTime"] = "Start time is required"
	}
	if t.EndTime.IsZero() {
		errs["endTime"] = "End time is required"
	} else if !t.EndTime.After(t.StartTime) {
		errs["endTime"] = "End time must be after start time"
	}
	if !priorities[t.Priority] {
		errs["priority"] = "Invalid priority"
	}
	if !statuses[t.Status] {
		errs["status"] = "Invalid status"
	}
	if t.Recurring != nil {
		for field, msg := range validateRecurring(t.Recurring) {
			errs["recurring."+field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateRecurring(r *RecurringPattern) FieldErrors {
	errs := FieldErrors{}
	if !frequencies[r.Frequency] {
		errs["frequency"] = "Invalid frequency"
	}
	if r.Interval < 1 {
		errs["interval"] = "Interval must be at least 1"
	}
	if r.Occurrences < 0 {
		errs["occurrences"] = "Occurrences cannot be negative"
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			errs["daysOfWeek"] = "Days of week must be within 0-6"
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateSimpleTask 校验旧版精简形态任务
func ValidateSimpleTask(t *SimpleTask) FieldErrors {
	errs := FieldErrors{}
	if t.ID == "" {
		errs["id"] = "Task ID is required"
	}
	if t.Title == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(t.Title) > 100 {
		errs["title"] = "Title must be less than 100 characters"
	}
	if utf8.RuneCountInString(t.Description) > 500 {
		errs["description"] = "Description must be less than 500 characters"
	}
	if t.StartTime.IsZero() {
		errs["startTime"] = "Start time is required"
	}
	if t.EndTime.IsZero() {
		errs["endTime"] = "End time is required"
	} else if !t.EndTime.After(t.StartTime) {
		errs["endTime"] = "End time must be after start time"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateActivity 校验活动记录
func ValidateActivity(a *Activity) FieldErrors {
	errs := FieldErrors{}
	if a.ID == "" {
		errs["id"] = "Activity ID is required"
	}
	if a.URL == "" {
		errs["url"] = "URL is required"
	}
	if a.Domain == "" {
		errs["domain"] = "Domain is required"
	}
	if !activityCategories[a.Category] {
		errs["category"] = "Invalid activity category"
	}
	if a.StartTime.IsZero() {
		errs["startTime"] = "Start time is required"
	}
	if a.Duration < 0 {
		errs["duration"] = "Duration must be non-negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateChatMessage 校验对话消息
func ValidateChatMessage(m *ChatMessage) FieldErrors {
	errs := FieldErrors{}
	if m.ID == "" {
		errs["id"] = "Message ID is required"
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		errs["role"] = "Invalid role"
	}
	if m.Content == "" {
		errs["content"] = "Message content is required"
	}
	if m.Timestamp.IsZero() {
		errs["timestamp"] = "Timestamp is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateSettings 校验设置记录
func ValidateSettings(s *Settings) FieldErrors {
	errs := FieldErrors{}
	if s.PomodoroLength < 1 || s.PomodoroLength > 120 {
		errs["pomodoroLength"] = "Pomodoro length must be within 1-120 minutes"
	}
	if s.ShortBreakLength < 1 || s.ShortBreakLength > 60 {
		errs["shortBreakLength"] = "Short break length must be within 1-60 minutes"
	}
	if s.LongBreakLength < 1 || s.LongBreakLength > 120 {
		errs["longBreakLength"] = "Long break length must be within 1-120 minutes"
	}
	if !hexColorPattern.MatchString(s.AccentColor) {
		errs["accentColor"] = "Invalid hex color"
	}
	for _, c := range s.Categories {
		if c.ID == "" || c.Name == "" {
			errs["categories"] = "Category id and name are required"
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
