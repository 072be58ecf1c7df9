package storage

import (
	"encoding/json"

	"FocusGo/models"
)

// 任务以完整形态落盘；读取时兼容旧版精简形态的历史数据，
// 缺失字段按固定默认值补齐（旧形态不保留重复规则细节和目标关联）。

// expandSimpleTask 把旧版精简形态展开为完整任务
func (s *Store) expandSimpleTask(simple models.SimpleTask) models.ScheduledTask {
	category := simple.Category
	if !models.IsTaskCategory(category) {
		category = models.DefaultTaskCategory
	}
	color := simple.Color
	if color == "" {
		color = models.DefaultTaskColor
	}
	status := models.StatusPending
	if simple.Completed {
		status = models.StatusCompleted
	}

	task := models.ScheduledTask{
		ID:          simple.ID,
		Title:       simple.Title,
		Description: simple.Description,
		Category:    category,
		StartTime:   simple.StartTime,
		EndTime:     simple.EndTime,
		Color:       color,
		Priority:    models.DefaultTaskPriority,
		Status:      status,
		LinkedGoals: []string{},
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}
	if simple.IsRecurring {
		// 旧形态只存布尔标记，频率细节已丢失，按每天一次还原
		task.Recurring = &models.RecurringPattern{Frequency: models.FrequencyDaily, Interval: 1}
	}
	return task
}

// decodeTasks 逐条解析：先按完整形态，失败再按旧版精简形态，仍失败则丢弃
func (s *Store) decodeTasks(raw []byte) []models.ScheduledTask {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		s.logger.Warnw("任务集合解析失败，回退为空集合", "key", KeyTasks, "error", err)
		return []models.ScheduledTask{}
	}

	tasks := make([]models.ScheduledTask, 0, len(elements))
	for i, el := range elements {
		var full models.ScheduledTask
		if err := json.Unmarshal(el, &full); err == nil {
			if errs := models.ValidateScheduledTask(&full); errs == nil {
				if full.LinkedGoals == nil {
					full.LinkedGoals = []string{}
				}
				tasks = append(tasks, full)
				continue
			}
		}

		var simple models.SimpleTask
		if err := json.Unmarshal(el, &simple); err != nil {
			s.logger.Warnw("任务元素解析失败，已跳过", "index", i, "error", err)
			continue
		}
		if errs := models.ValidateSimpleTask(&simple); errs != nil {
			s.logger.Warnw("任务元素校验失败，已跳过", "index", i, "errors", errs)
			continue
		}
		tasks = append(tasks, s.expandSimpleTask(simple))
	}
	return tasks
}

func (s *Store) GetTasks() []models.ScheduledTask {
	raw, ok, err := s.medium.GetItem(KeyTasks)
	if err != nil {
		s.logger.Warnw("读取存储介质失败，回退为空集合", "key", KeyTasks, "error", err)
		return []models.ScheduledTask{}
	}
	if !ok {
		return []models.ScheduledTask{}
	}
	return s.decodeTasks([]byte(raw))
}

func (s *Store) SaveTasks(tasks []models.ScheduledTask) error {
	return writeCollection(s, KeyTasks, tasks, models.ValidateScheduledTask)
}

// AddTask 存储边界补齐默认值并打上审计时间戳
func (s *Store) AddTask(task models.ScheduledTask) (models.ScheduledTask, error) {
	if task.Category == "" {
		task.Category = models.DefaultTaskCategory
	}
	if task.Priority == "" {
		task.Priority = models.DefaultTaskPriority
	}
	if task.Color == "" {
		task.Color = models.DefaultTaskColor
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.LinkedGoals == nil {
		task.LinkedGoals = []string{}
	}
	task.CreatedAt = s.now()
	task.UpdatedAt = task.CreatedAt

	if errs := models.ValidateScheduledTask(&task); errs != nil {
		return models.ScheduledTask{}, errs
	}

	tasks := s.GetTasks()
	tasks = append(tasks, task)
	if err := s.SaveTasks(tasks); err != nil {
		return models.ScheduledTask{}, err
	}
	return task, nil
}

// UpdateTask 按 ID 整体替换，刷新 updatedAt，保留原 createdAt
func (s *Store) UpdateTask(id string, updated models.ScheduledTask) (models.ScheduledTask, error) {
	tasks := s.GetTasks()
	for i := range tasks {
		if tasks[i].ID == id {
			updated.ID = id
			updated.CreatedAt = tasks[i].CreatedAt
			updated.UpdatedAt = s.now()
			if updated.LinkedGoals == nil {
				updated.LinkedGoals = []string{}
			}
			if errs := models.ValidateScheduledTask(&updated); errs != nil {
				return models.ScheduledTask{}, errs
			}
			tasks[i] = updated
			if err := s.SaveTasks(tasks); err != nil {
				return models.ScheduledTask{}, err
			}
			return updated, nil
		}
	}
	return models.ScheduledTask{}, ErrNotFound
}

func (s *Store) DeleteTask(id string) error {
	tasks := s.GetTasks()
	kept := make([]models.ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.SaveTasks(kept)
}
