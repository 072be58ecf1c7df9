package storage

import (
	"encoding/json"
	"time"

	"FocusGo/models"
)

// ExportAll 导出全部集合、设置与版本标记为一份 JSON 文档
func (s *Store) ExportAll() (string, error) {
	doc := models.ExportDocument{
		Goals:       s.GetGoals(),
		Activities:  s.GetActivities(),
		Tasks:       s.GetTasks(),
		Settings:    s.GetSettings(),
		ChatHistory: s.GetChatHistory(),
		ExportedAt:  s.now().UTC().Format(time.RFC3339),
		Version:     ExportVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportAll 导入导出文档。顶层解析失败时不改动任何数据；
// 每个已知键走各自的校验写入路径，缺失的键对应集合保持原样，未知键忽略。
func (s *Store) ImportAll(jsonStr string) models.ImportResult {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return models.ImportResult{Success: false, Error: err.Error()}
	}

	if raw, ok := doc["goals"]; ok {
		goals := decodeCollection(s, KeyGoals, raw, models.ValidateGoal)
		if err := s.SaveGoals(goals); err != nil {
			return models.ImportResult{Success: false, Error: err.Error()}
		}
	}
	if raw, ok := doc["activities"]; ok {
		activities := decodeCollection(s, KeyActivities, raw, models.ValidateActivity)
		if err := s.SaveActivities(activities); err != nil {
			return models.ImportResult{Success: false, Error: err.Error()}
		}
	}
	if raw, ok := doc["tasks"]; ok {
		tasks := s.decodeTasks(raw)
		if err := s.SaveTasks(tasks); err != nil {
			return models.ImportResult{Success: false, Error: err.Error()}
		}
	}
	if raw, ok := doc["settings"]; ok {
		var settings models.Settings
		if err := json.Unmarshal(raw, &settings); err != nil {
			settings = models.DefaultSettings()
		}
		if err := s.SaveSettings(settings); err != nil {
			return models.ImportResult{Success: false, Error: err.Error()}
		}
	}
	if raw, ok := doc["chatHistory"]; ok {
		history := decodeCollection(s, KeyChatHistory, raw, models.ValidateChatMessage)
		if err := s.SaveChatHistory(history); err != nil {
			return models.ImportResult{Success: false, Error: err.Error()}
		}
	}

	return models.ImportResult{Success: true}
}
