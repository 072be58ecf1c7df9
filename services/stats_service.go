package services

import (
	"FocusGo/models"
)

// ComputeProductivityStats 任务统计汇总（仪表盘小组件数据源）
func ComputeProductivityStats(tasks []models.ScheduledTask) models.ProductivityStats {
	stats := models.ProductivityStats{
		TotalTasks:        len(tasks),
		CategoryBreakdown: map[string]int{},
	}
	if len(tasks) == 0 {
		return stats
	}

	dayCounts := map[string]int{}
	hourCounts := map[int]int{}
	var totalMinutes float64

	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			stats.CompletedTasks++
		}
		stats.CategoryBreakdown[t.Category]++
		totalMinutes += t.Duration().Minutes()
		dayCounts[t.StartTime.Weekday().String()]++
		hourCounts[t.StartTime.Hour()]++
	}

	stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	stats.AverageTaskDuration = totalMinutes / float64(stats.TotalTasks)

	best := -1
	for day, count := range dayCounts {
		if count > best || (count == best && day < stats.BusiestDay) {
			best = count
			stats.BusiestDay = day
		}
	}
	best = -1
	for hour, count := range hourCounts {
		if count > best || (count == best && hour < stats.MostProductiveHour) {
			best = count
			stats.MostProductiveHour = hour
		}
	}
	return stats
}

// ComputeActivityStats 活动分类累计时长（秒）
func ComputeActivityStats(activities []models.Activity) models.ActivityStats {
	var stats models.ActivityStats
	for _, a := range activities {
		switch a.Category {
		case models.ActivityProductive:
			stats.ProductiveSeconds += a.Duration
		case models.ActivityDistraction:
			stats.DistractionSeconds += a.Duration
		case models.ActivityNeutral:
			stats.NeutralSeconds += a.Duration
		}
	}
	return stats
}
