package storage

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"FocusGo/models"
)

// 存储键，与浏览器端 localStorage 的历史数据保持兼容
const (
	KeyActivities      = "productivity_activities"
	KeyGoals           = "productivity_goals"
	KeyChatHistory     = "productivity_chat"
	KeySettings        = "productivity_settings"
	KeyTasks           = "productivity_tasks"
	KeyTheme           = "theme"
	KeyOnboarding      = "onboarding_completed"
	KeyCurrentActivity = "current_activity"
)

// AllKeys ClearAll 时清理的全部键
var AllKeys = []string{
	KeyActivities, KeyGoals, KeyChatHistory, KeySettings,
	KeyTasks, KeyTheme, KeyOnboarding, KeyCurrentActivity,
}

const ExportVersion = "1.0.0"

// Store 类型化的持久层，读写均经过逐条校验。
// 读取永不返回错误：缺失或损坏的数据回退为空集合/默认值；
// 写入时介质报错（容量不足等）原样向上传递，不重试。
type Store struct {
	medium Medium
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewStore(medium Medium, logger *zap.SugaredLogger) *Store {
	return &Store{medium: medium, logger: logger, now: time.Now}
}

// readCollection 读取集合并逐条校验，非法元素丢弃（只记日志），不会整体失败
func readCollection[T any](s *Store, key string, validate func(*T) models.FieldErrors) []T {
	raw, ok, err := s.medium.GetItem(key)
	if err != nil {
		s.logger.Warnw("读取存储介质失败，回退为空集合", "key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}
	return decodeCollection(s, key, []byte(raw), validate)
}

func decodeCollection[T any](s *Store, key string, raw []byte, validate func(*T) models.FieldErrors) []T {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		s.logger.Warnw("JSON 解析失败，回退为空集合", "key", key, "error", err)
		return []T{}
	}

	items := make([]T, 0, len(elements))
	for i, el := range elements {
		var item T
		if err := json.Unmarshal(el, &item); err != nil {
			s.logger.Warnw("元素解析失败，已跳过", "key", key, "index", i, "error", err)
			continue
		}
		if errs := validate(&item); errs != nil {
			s.logger.Warnw("元素校验失败，已跳过", "key", key, "index", i, "errors", errs)
			continue
		}
		items = append(items, item)
	}
	return items
}

// writeCollection 先逐条过滤非法元素再整体写入
func writeCollection[T any](s *Store, key string, items []T, validate func(*T) models.FieldErrors) error {
	valid := make([]T, 0, len(items))
	for i := range items {
		if errs := validate(&items[i]); errs != nil {
			s.logger.Warnw("写入前校验失败，元素已剔除", "key", key, "index", i, "errors", errs)
			continue
		}
		valid = append(valid, items[i])
	}

	data, err := json.Marshal(valid)
	if err != nil {
		return err
	}
	return s.medium.SetItem(key, string(data))
}

// ----------------------------------------
// 目标
// ----------------------------------------

func (s *Store) GetGoals() []models.Goal {
	return readCollection(s, KeyGoals, models.ValidateGoal)
}

func (s *Store) SaveGoals(goals []models.Goal) error {
	return writeCollection(s, KeyGoals, goals, models.ValidateGoal)
}

// AddGoal 读-改-写追加，多实例同时写入时存在覆盖丢失的可能
func (s *Store) AddGoal(goal models.Goal) error {
	goals := s.GetGoals()
	goals = append(goals, goal)
	return s.SaveGoals(goals)
}

func (s *Store) UpdateGoal(id string, updated models.Goal) error {
	goals := s.GetGoals()
	for i := range goals {
		if goals[i].ID == id {
			updated.ID = id
			goals[i] = updated
			return s.SaveGoals(goals)
		}
	}
	return nil
}

func (s *Store) DeleteGoal(id string) error {
	goals := s.GetGoals()
	kept := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return s.SaveGoals(kept)
}

// ----------------------------------------
// 活动
// ----------------------------------------

func (s *Store) GetActivities() []models.Activity {
	return readCollection(s, KeyActivities, models.ValidateActivity)
}

func (s *Store) SaveActivities(activities []models.Activity) error {
	return writeCollection(s, KeyActivities, activities, models.ValidateActivity)
}

func (s *Store) AddActivity(activity models.Activity) error {
	activities := s.GetActivities()
	activities = append(activities, activity)
	return s.SaveActivities(activities)
}

// GetCurrentActivity 扩展写入的进行中活动，不存在或非法时为 nil
func (s *Store) GetCurrentActivity() *models.Activity {
	raw, ok, err := s.medium.GetItem(KeyCurrentActivity)
	if err != nil || !ok {
		return nil
	}
	var activity models.Activity
	if err := json.Unmarshal([]byte(raw), &activity); err != nil {
		s.logger.Warnw("当前活动解析失败", "error", err)
		return nil
	}
	if errs := models.ValidateActivity(&activity); errs != nil {
		s.logger.Warnw("当前活动校验失败", "errors", errs)
		return nil
	}
	return &activity
}

func (s *Store) SetCurrentActivity(activity models.Activity) error {
	if errs := models.ValidateActivity(&activity); errs != nil {
		return errs
	}
	data, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	return s.medium.SetItem(KeyCurrentActivity, string(data))
}

func (s *Store) ClearCurrentActivity() error {
	return s.medium.RemoveItem(KeyCurrentActivity)
}

// ----------------------------------------
// 对话历史
// ----------------------------------------

func (s *Store) GetChatHistory() []models.ChatMessage {
	return readCollection(s, KeyChatHistory, models.ValidateChatMessage)
}

func (s *Store) SaveChatHistory(history []models.ChatMessage) error {
	return writeCollection(s, KeyChatHistory, history, models.ValidateChatMessage)
}

// AppendChatMessage 非法消息直接拒绝，不进入历史
func (s *Store) AppendChatMessage(message models.ChatMessage) error {
	if errs := models.ValidateChatMessage(&message); errs != nil {
		return errs
	}
	history := s.GetChatHistory()
	history = append(history, message)
	return s.SaveChatHistory(history)
}

func (s *Store) ClearChatHistory() error {
	return s.medium.RemoveItem(KeyChatHistory)
}

// ----------------------------------------
// 设置（单例）
// ----------------------------------------

// GetSettings 缺失、解析失败或校验失败时整体回退为默认设置
func (s *Store) GetSettings() models.Settings {
	raw, ok, err := s.medium.GetItem(KeySettings)
	if err != nil || !ok {
		return models.DefaultSettings()
	}
	var settings models.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warnw("设置解析失败，使用默认设置", "error", err)
		return models.DefaultSettings()
	}
	if errs := models.ValidateSettings(&settings); errs != nil {
		s.logger.Warnw("设置校验失败，使用默认设置", "errors", errs)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings 非法设置不落盘，改写为默认设置
func (s *Store) SaveSettings(settings models.Settings) error {
	if errs := models.ValidateSettings(&settings); errs != nil {
		s.logger.Warnw("设置校验失败，已回退为默认设置", "errors", errs)
		settings = models.DefaultSettings()
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.medium.SetItem(KeySettings, string(data))
}

// ----------------------------------------
// 主题与引导
// ----------------------------------------

func (s *Store) GetTheme() string {
	raw, ok, err := s.medium.GetItem(KeyTheme)
	if err == nil && ok && raw == "dark" {
		return "dark"
	}
	return "light"
}

func (s *Store) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return models.FieldErrors{"theme": "Theme must be light or dark"}
	}
	return s.medium.SetItem(KeyTheme, theme)
}

func (s *Store) IsOnboardingComplete() bool {
	raw, ok, err := s.medium.GetItem(KeyOnboarding)
	return err == nil && ok && raw == "true"
}

func (s *Store) SetOnboardingComplete() error {
	return s.medium.SetItem(KeyOnboarding, "true")
}

// ----------------------------------------
// 清空
// ----------------------------------------

func (s *Store) ClearAll() error {
	for _, key := range AllKeys {
		if err := s.medium.RemoveItem(key); err != nil {
			return err
		}
	}
	return nil
}
