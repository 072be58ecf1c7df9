package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/services"
)

type CalendarController struct{}

// parseDateParam 解析 ?date=，支持 2006-01-02 与 RFC3339，缺省为今天
func parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	if d, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return d, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式"})
	return time.Time{}, false
}

// MonthView 月视图：前导占位格 + 每日单元格（含当日任务）
func (cc *CalendarController) MonthView(c *gin.Context) {
	ref, ok := parseDateParam(c)
	if !ok {
		return
	}

	cells := services.MonthGrid(ref)
	year, month, _ := ref.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	monthEnd := services.EndOfDay(monthStart.AddDate(0, 1, -1))

	expanded := services.ExpandTasksInRange(config.Store.GetTasks(), monthStart, monthEnd)
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		cell.Tasks = services.SortByStartTime(services.TasksOnDate(expanded, cell.Date))
	}

	c.JSON(http.StatusOK, models.MonthViewResponse{
		Year:  year,
		Month: int(month),
		Cells: cells,
	})
}

// WeekView 周视图：从周日开始的 7 天，每天任务按开始时间升序
func (cc *CalendarController) WeekView(c *gin.Context) {
	ref, ok := parseDateParam(c)
	if !ok {
		return
	}

	days := services.WeekGrid(ref)
	expanded := services.ExpandTasksInRange(config.Store.GetTasks(), days[0], services.EndOfDay(days[6]))

	resp := models.WeekViewResponse{Days: make([]models.DayViewResponse, 0, len(days))}
	for _, day := range days {
		resp.Days = append(resp.Days, models.DayViewResponse{
			Date:  day,
			Tasks: services.SortByStartTime(services.TasksOnDate(expanded, day)),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// DayView 日视图：当天任务按开始时间升序
func (cc *CalendarController) DayView(c *gin.Context) {
	ref, ok := parseDateParam(c)
	if !ok {
		return
	}

	expanded := services.ExpandTasksInRange(config.Store.GetTasks(), services.StartOfDay(ref), services.EndOfDay(ref))
	c.JSON(http.StatusOK, models.DayViewResponse{
		Date:  services.StartOfDay(ref),
		Tasks: services.SortByStartTime(services.TasksOnDate(expanded, ref)),
	})
}

// Timetable 时间表视图：按小时分槽，任务只落在开始小时的槽
func (cc *CalendarController) Timetable(c *gin.Context) {
	ref, ok := parseDateParam(c)
	if !ok {
		return
	}

	startHour := queryInt(c, "start", models.DefaultWorkingHoursStart)
	endHour := queryInt(c, "end", models.DefaultWorkingHoursEnd)
	hours := services.DayHours(startHour, endHour)
	if len(hours) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时段范围"})
		return
	}

	expanded := services.ExpandTasksInRange(config.Store.GetTasks(), services.StartOfDay(ref), services.EndOfDay(ref))
	slots := make([]models.TimetableSlot, 0, len(hours))
	for _, hour := range hours {
		slots = append(slots, models.TimetableSlot{
			Date:          services.StartOfDay(ref),
			Hour:          hour,
			Tasks:         services.TasksInHourBucket(expanded, ref, hour),
			IsWorkingHour: hour >= startHour && hour < endHour,
		})
	}

	c.JSON(http.StatusOK, models.TimetableResponse{
		Date:  services.StartOfDay(ref),
		Slots: slots,
	})
}

// Conflicts 当天任务的时间冲突检测
func (cc *CalendarController) Conflicts(c *gin.Context) {
	ref, ok := parseDateParam(c)
	if !ok {
		return
	}

	expanded := services.ExpandTasksInRange(config.Store.GetTasks(), services.StartOfDay(ref), services.EndOfDay(ref))
	conflicts := services.DetectConflicts(services.TasksOnDate(expanded, ref))
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
