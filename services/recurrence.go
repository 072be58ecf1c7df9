package services

import (
	"fmt"
	"time"

	"FocusGo/models"
)

// 重复任务只存模板，实例在读路径上按需展开，从不落盘。

// ExpandRecurrence 在 [rangeStart, rangeEnd] 内展开重复模板的实例。
// 从模板自身的开始时间出发，按 频率×间隔 反复推进；
// 终止条件取最先到达者：超出 endDate、达到 occurrences 次数、超出查询范围。
// daysOfWeek 与 exceptions 过滤在计数与发射之前应用。
func ExpandRecurrence(task models.ScheduledTask, rangeStart, rangeEnd time.Time) []models.ScheduledTask {
	if task.Recurring == nil {
		if !task.StartTime.Before(rangeStart) && !task.StartTime.After(rangeEnd) {
			return []models.ScheduledTask{task}
		}
		return []models.ScheduledTask{}
	}

	rule := task.Recurring
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}
	duration := task.Duration()

	instances := make([]models.ScheduledTask, 0)
	occurred := 0
	for start := task.StartTime; !start.After(rangeEnd); start = advance(start, rule.Frequency, interval) {
		if rule.EndDate != nil && start.After(EndOfDay(*rule.EndDate)) {
			break
		}
		if !occursOn(rule, start) {
			continue
		}
		occurred++
		if !start.Before(rangeStart) {
			instance := task
			instance.ID = fmt.Sprintf("%s_%s", task.ID, start.Format("20060102T1504"))
			instance.StartTime = start
			instance.EndTime = start.Add(duration)
			instances = append(instances, instance)
		}
		if rule.Occurrences > 0 && occurred >= rule.Occurrences {
			break
		}
	}
	return instances
}

// ExpandTasksInRange 集合级展开：普通任务原样纳入，重复模板展开为实例
func ExpandTasksInRange(tasks []models.ScheduledTask, rangeStart, rangeEnd time.Time) []models.ScheduledTask {
	expanded := make([]models.ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		expanded = append(expanded, ExpandRecurrence(t, rangeStart, rangeEnd)...)
	}
	return expanded
}

func advance(start time.Time, frequency string, interval int) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return start.AddDate(0, 0, interval)
	case models.FrequencyWeekly:
		return start.AddDate(0, 0, 7*interval)
	case models.FrequencyMonthly:
		return start.AddDate(0, interval, 0)
	case models.FrequencyYearly:
		return start.AddDate(interval, 0, 0)
	default:
		// 未知频率按每天处理，避免死循环
		return start.AddDate(0, 0, interval)
	}
}

// occursOn daysOfWeek（0=周日）与 exceptions（按日历日）过滤
func occursOn(rule *models.RecurringPattern, start time.Time) bool {
	if len(rule.DaysOfWeek) > 0 {
		match := false
		for _, d := range rule.DaysOfWeek {
			if int(start.Weekday()) == d {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	for _, ex := range rule.Exceptions {
		if SameDay(start, ex) {
			return false
		}
	}
	return true
}
