package services

import (
	"testing"
	"time"

	"FocusGo/models"
)

func newTask(id string, start time.Time, d time.Duration) models.ScheduledTask {
	return models.ScheduledTask{
		ID:        id,
		Title:     "Task " + id,
		Category:  models.TaskCategoryWork,
		StartTime: start,
		EndTime:   start.Add(d),
		Color:     "#45B7D1",
		Priority:  models.PriorityMedium,
		Status:    models.StatusPending,
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("同一天不同时刻应相等")
	}
	if SameDay(b, c) {
		t.Error("跨日历日不应相等")
	}
}

func TestMonthGridLeadingOffset(t *testing.T) {
	// 2025年1月1日是星期三，网格前面应有 3 个占位格
	cells := MonthGrid(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	if len(cells) != 3+31 {
		t.Fatalf("单元格数量不对: %d", len(cells))
	}
	for i := 0; i < 3; i++ {
		if cells[i] != nil {
			t.Errorf("第 %d 格应为占位 nil", i)
		}
	}
	if cells[3] == nil || cells[3].Day != 1 {
		t.Errorf("第一个真实格应为 1 号: %+v", cells[3])
	}
	if last := cells[len(cells)-1]; last == nil || last.Day != 31 {
		t.Errorf("最后一格应为 31 号: %+v", last)
	}
}

func TestMonthGridSundayStartHasNoPadding(t *testing.T) {
	// 2025年6月1日是星期日，无前导占位
	cells := MonthGrid(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))
	if len(cells) != 30 {
		t.Fatalf("单元格数量不对: %d", len(cells))
	}
	if cells[0] == nil || cells[0].Day != 1 {
		t.Errorf("首格应为 1 号: %+v", cells[0])
	}
}

func TestWeekGridStartsSunday(t *testing.T) {
	// 2025年3月12日是星期三，所在周从 3月9日（周日）开始
	days := WeekGrid(time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC))
	if len(days) != 7 {
		t.Fatalf("应为 7 天: %d", len(days))
	}
	if days[0].Weekday() != time.Sunday || days[0].Day() != 9 {
		t.Errorf("首日应为 3月9日 周日: %v", days[0])
	}
	if days[6].Day() != 15 {
		t.Errorf("末日应为 3月15日: %v", days[6])
	}
	// 参考日期本身是周日时，当天即为首日
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	if got := WeekGrid(sunday); got[0].Day() != 9 {
		t.Errorf("周日作为参考应从当天开始: %v", got[0])
	}
}

func TestTasksInHourBucketExclusivity(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// 14:00 ~ 16:00 的任务只出现在 14 点的槽里
	task := newTask("t1", time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), 2*time.Hour)
	tasks := []models.ScheduledTask{task}

	if got := TasksInHourBucket(tasks, date, 14); len(got) != 1 {
		t.Errorf("14 点槽应包含任务: %+v", got)
	}
	if got := TasksInHourBucket(tasks, date, 15); len(got) != 0 {
		t.Errorf("15 点槽不应包含任务: %+v", got)
	}
	if got := TasksInHourBucket(tasks, date, 16); len(got) != 0 {
		t.Errorf("16 点槽不应包含任务: %+v", got)
	}
}

func TestDayHours(t *testing.T) {
	hours := DayHours(models.DefaultWorkingHoursStart, models.DefaultWorkingHoursEnd)
	if len(hours) != 14 {
		t.Fatalf("默认窗口应为 14 个小时: %d", len(hours))
	}
	if hours[0] != 8 || hours[len(hours)-1] != 21 {
		t.Errorf("窗口应为 [8, 22): %v", hours)
	}
	if got := DayHours(10, 10); len(got) != 0 {
		t.Errorf("空窗口应返回空切片: %v", got)
	}
	if got := DayHours(-1, 5); len(got) != 0 {
		t.Errorf("非法窗口应返回空切片: %v", got)
	}
}

func TestReschedulePreservesDuration(t *testing.T) {
	// 90 分钟的任务，改期后时长严格不变
	start := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	task := newTask("t1", start, 90*time.Minute)

	target := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	moved := Reschedule(task, 9, target)

	if moved.StartTime.Hour() != 9 || moved.StartTime.Minute() != 0 {
		t.Errorf("开始时间应落在整点: %v", moved.StartTime)
	}
	if !SameDay(moved.StartTime, target) {
		t.Errorf("日期不对: %v", moved.StartTime)
	}
	if moved.Duration() != 90*time.Minute {
		t.Errorf("时长改变了: %v", moved.Duration())
	}
	// 入参不被修改
	if !task.StartTime.Equal(start) {
		t.Errorf("入参被改动: %v", task.StartTime)
	}
}

func TestSortByStartTime(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tasks := []models.ScheduledTask{
		newTask("late", base.Add(16*time.Hour), time.Hour),
		newTask("early", base.Add(9*time.Hour), time.Hour),
		newTask("mid", base.Add(12*time.Hour), time.Hour),
	}
	sorted := SortByStartTime(tasks)
	if sorted[0].ID != "early" || sorted[1].ID != "mid" || sorted[2].ID != "late" {
		t.Errorf("排序不对: %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	// 原切片顺序不变
	if tasks[0].ID != "late" {
		t.Error("入参切片被改动")
	}
}

func TestValidateNewTask(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	if errs := ValidateNewTask("Valid title", start, end); errs != nil {
		t.Errorf("合法输入不应报错: %v", errs)
	}
	if errs := ValidateNewTask("   ", start, end); errs == nil || errs["title"] == "" {
		t.Errorf("空白标题应报错: %v", errs)
	}
	long := make([]rune, 101)
	for i := range long {
		long[i] = '长'
	}
	if errs := ValidateNewTask(string(long), start, end); errs == nil || errs["title"] == "" {
		t.Errorf("超长标题应报错: %v", errs)
	}
	if errs := ValidateNewTask("Backwards", end, start); errs == nil || errs["endTime"] == "" {
		t.Errorf("结束早于开始应报错: %v", errs)
	}
	// 相等也非法
	if errs := ValidateNewTask("Zero length", start, start); errs == nil || errs["endTime"] == "" {
		t.Errorf("零时长应报错: %v", errs)
	}
}

func TestDetectConflicts(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// a: 9~11，b: 10~12（与 a 重叠 60 分钟），c: 11~12（与 b 重叠，与 a 相邻不重叠）
	a := newTask("a", base.Add(9*time.Hour), 2*time.Hour)
	b := newTask("b", base.Add(10*time.Hour), 2*time.Hour)
	c := newTask("c", base.Add(11*time.Hour), time.Hour)
	conflicts := DetectConflicts([]models.ScheduledTask{a, b, c})
	if len(conflicts) != 2 {
		t.Fatalf("应检出 2 对冲突: %+v", conflicts)
	}
	if conflicts[0].OverlapMinutes != 60 {
		t.Errorf("a/b 重叠分钟数不对: %d", conflicts[0].OverlapMinutes)
	}
	// 首尾相接不算冲突
	if got := DetectConflicts([]models.ScheduledTask{a, c}); len(got) != 0 {
		t.Errorf("相邻任务不应算冲突: %+v", got)
	}
}
