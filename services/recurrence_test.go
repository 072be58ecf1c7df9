package services

import (
	"testing"
	"time"

	"FocusGo/models"
)

func recurringTask(id string, start time.Time, d time.Duration, rule models.RecurringPattern) models.ScheduledTask {
	task := newTask(id, start, d)
	task.Recurring = &rule
	return task
}

func TestExpandRecurrenceDaily(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency: models.FrequencyDaily,
		Interval:  1,
	})

	rangeStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	if len(got) != 3 {
		t.Fatalf("10~12 日应展开 3 个实例: %d", len(got))
	}
	for i, inst := range got {
		if inst.StartTime.Hour() != 9 {
			t.Errorf("实例 %d 开始时刻不对: %v", i, inst.StartTime)
		}
		if inst.Duration() != time.Hour {
			t.Errorf("实例 %d 时长不对: %v", i, inst.Duration())
		}
	}
	// 实例 ID 由模板 ID 加时间后缀派生
	if got[0].ID != "t1_20250310T0900" {
		t.Errorf("实例 ID 不对: %s", got[0].ID)
	}
}

func TestExpandRecurrenceWeeklyInterval(t *testing.T) {
	// 每两周一次，从 3月3日（周一）开始
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency: models.FrequencyWeekly,
		Interval:  2,
	})

	rangeStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	if len(got) != 3 {
		t.Fatalf("3月内应为 3日/17日/31日 三个实例: %+v", got)
	}
	if got[1].StartTime.Day() != 17 || got[2].StartTime.Day() != 31 {
		t.Errorf("间隔推进不对: %v %v", got[1].StartTime, got[2].StartTime)
	}
}

func TestExpandRecurrenceDaysOfWeekFilter(t *testing.T) {
	// 每天推进但只保留周一(1)和周三(3)
	start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC) // 周一
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency:  models.FrequencyDaily,
		Interval:   1,
		DaysOfWeek: []int{1, 3},
	})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	if len(got) != 2 {
		t.Fatalf("一周内应只有周一和周三两个实例: %+v", got)
	}
	if got[0].StartTime.Weekday() != time.Monday || got[1].StartTime.Weekday() != time.Wednesday {
		t.Errorf("星期过滤不对: %v %v", got[0].StartTime.Weekday(), got[1].StartTime.Weekday())
	}
}

func TestExpandRecurrenceEndDateInclusive(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency: models.FrequencyDaily,
		Interval:  1,
		EndDate:   &endDate,
	})

	rangeStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	// endDate 含当天：1~5 日共 5 个实例，尽管 9:00 晚于 endDate 的零点
	if len(got) != 5 {
		t.Fatalf("endDate 应含当天: %d 个实例", len(got))
	}
	if got[len(got)-1].StartTime.Day() != 5 {
		t.Errorf("最后实例应在 5 日: %v", got[len(got)-1].StartTime)
	}
}

func TestExpandRecurrenceOccurrencesCountedFromTemplateStart(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency:   models.FrequencyDaily,
		Interval:    1,
		Occurrences: 5,
	})

	// 查询窗口在后面：次数从模板开始累计，3月4~5日是第 4、5 次
	rangeStart := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	if len(got) != 2 {
		t.Fatalf("次数上限应从模板开始累计: %+v", got)
	}
	if got[1].StartTime.Day() != 5 {
		t.Errorf("最后一次应在 5 日: %v", got[1].StartTime)
	}
}

func TestExpandRecurrenceExceptionsSkipDates(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency:  models.FrequencyDaily,
		Interval:   1,
		Exceptions: []time.Time{time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
	})

	rangeStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 3, 23, 59, 59, 0, time.UTC)
	got := ExpandRecurrence(task, rangeStart, rangeEnd)
	if len(got) != 2 {
		t.Fatalf("例外日期应被跳过: %+v", got)
	}
	for _, inst := range got {
		if inst.StartTime.Day() == 2 {
			t.Errorf("例外日期出现了实例: %v", inst.StartTime)
		}
	}
}

func TestExpandRecurrenceNonRecurringPassThrough(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	task := newTask("plain", start, time.Hour)

	inRange := ExpandRecurrence(task,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC))
	if len(inRange) != 1 || inRange[0].ID != "plain" {
		t.Errorf("范围内的普通任务应原样返回: %+v", inRange)
	}

	outOfRange := ExpandRecurrence(task,
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC))
	if len(outOfRange) != 0 {
		t.Errorf("范围外的普通任务不应返回: %+v", outOfRange)
	}
}

func TestExpandRecurrenceZeroIntervalDoesNotHang(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	task := recurringTask("t1", start, time.Hour, models.RecurringPattern{
		Frequency: models.FrequencyDaily,
		Interval:  0, // 按 1 处理
	})
	got := ExpandRecurrence(task,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 23, 59, 59, 0, time.UTC))
	if len(got) != 2 {
		t.Errorf("间隔 0 应按 1 处理: %d 个实例", len(got))
	}
}

func TestExpandTasksInRangeMixesTemplatesAndPlain(t *testing.T) {
	plain := newTask("plain", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), time.Hour)
	template := recurringTask("tmpl", time.Date(2025, 3, 9, 14, 0, 0, 0, time.UTC), time.Hour,
		models.RecurringPattern{Frequency: models.FrequencyDaily, Interval: 1})

	got := ExpandTasksInRange([]models.ScheduledTask{plain, template},
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 23, 59, 59, 0, time.UTC))
	// plain 一个 + 模板两天各一个
	if len(got) != 3 {
		t.Errorf("展开结果数量不对: %+v", got)
	}
}
