package services

import (
	"sort"
	"strings"
	"time"

	"FocusGo/models"
)

// 日历引擎：纯函数，不持有状态，输入输出均为值。
// 所有函数假定任务已通过创建边界的校验（endTime > startTime）。

// SameDay 本地日历日相等，忽略时分秒
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay 当天零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay 当天最后一纳秒
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// TasksOnDate 按开始时间的日历日过滤，不排序（调用方自行排序）
func TasksOnDate(tasks []models.ScheduledTask, date time.Time) []models.ScheduledTask {
	matched := make([]models.ScheduledTask, 0)
	for _, t := range tasks {
		if SameDay(t.StartTime, date) {
			matched = append(matched, t)
		}
	}
	return matched
}

// TasksInHourBucket 按日历日且开始小时过滤。
// 跨多个小时的任务只出现在开始小时的槽里，这是既定的产品行为。
func TasksInHourBucket(tasks []models.ScheduledTask, date time.Time, hour int) []models.ScheduledTask {
	matched := make([]models.ScheduledTask, 0)
	for _, t := range tasks {
		if SameDay(t.StartTime, date) && t.StartTime.Hour() == hour {
			matched = append(matched, t)
		}
	}
	return matched
}

// MonthGrid 月视图网格：月首星期几决定前导 nil 占位格数量，
// 之后每月内的每一天一个单元格，不补齐到固定 42 格
func MonthGrid(ref time.Time) []*models.DayCell {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*models.DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, &models.DayCell{
			Day:  day,
			Date: time.Date(year, month, day, 0, 0, 0, 0, ref.Location()),
		})
	}
	return cells
}

// WeekGrid 从参考日期之前（含当天）最近的周日开始的连续 7 天
func WeekGrid(ref time.Time) []time.Time {
	start := StartOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayHours 可见时段 [start, end)，默认工作窗口 8~22
func DayHours(startHour, endHour int) []int {
	if startHour < 0 || endHour <= startHour {
		return []int{}
	}
	hours := make([]int, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Reschedule 拖拽改期：开始时间移到指定日期的整点，时长严格不变。
// 不修改入参，返回新值；updatedAt 由存储边界刷新。
func Reschedule(task models.ScheduledTask, newStartHour int, date time.Time) models.ScheduledTask {
	duration := task.Duration()
	y, m, d := date.Date()
	task.StartTime = time.Date(y, m, d, newStartHour, 0, 0, 0, date.Location())
	task.EndTime = task.StartTime.Add(duration)
	return task
}

// SortByStartTime 按开始时间升序返回副本（日视图排序）
func SortByStartTime(tasks []models.ScheduledTask) []models.ScheduledTask {
	sorted := append([]models.ScheduledTask(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// ValidateNewTask 创建边界校验：标题非空且不超过 100 字符，结束晚于开始。
// 非法输入在这里拦截，不会进入集合，引擎的读路径不再重复校验。
func ValidateNewTask(title string, start, end time.Time) models.FieldErrors {
	errs := models.FieldErrors{}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		errs["title"] = "Title is required"
	} else if len([]rune(trimmed)) > 100 {
		errs["title"] = "Title must be 100 characters or less"
	}
	if !end.After(start) {
		errs["endTime"] = "End time must be after start time"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// DetectConflicts 两两检测时间区间重叠
func DetectConflicts(tasks []models.ScheduledTask) []models.TimeConflict {
	conflicts := make([]models.TimeConflict, 0)
	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			overlap := overlapMinutes(tasks[i], tasks[j])
			if overlap > 0 {
				conflicts = append(conflicts, models.TimeConflict{
					Task1:          tasks[i],
					Task2:          tasks[j],
					OverlapMinutes: overlap,
				})
			}
		}
	}
	return conflicts
}

func overlapMinutes(a, b models.ScheduledTask) int {
	start := a.StartTime
	if b.StartTime.After(start) {
		start = b.StartTime
	}
	end := a.EndTime
	if b.EndTime.Before(end) {
		end = b.EndTime
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
