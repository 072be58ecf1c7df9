package models

// CategoryConfig 用户自定义分类
type CategoryConfig struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Settings 全局设置（单例记录，非集合）
type Settings struct {
	PomodoroLength   int              `json:"pomodoroLength"`   // 分钟，1 ~ 120
	ShortBreakLength int              `json:"shortBreakLength"` // 1 ~ 60
	LongBreakLength  int              `json:"longBreakLength"`  // 1 ~ 120
	AccentColor      string           `json:"accentColor"`
	Categories       []CategoryConfig `json:"categories"`
	Notifications    bool             `json:"notifications"`
	SoundEnabled     bool             `json:"soundEnabled"`
}

// DefaultSettings 默认设置，读取失败时整体回退
func DefaultSettings() Settings {
	return Settings{
		PomodoroLength:   25,
		ShortBreakLength: 5,
		LongBreakLength:  15,
		AccentColor:      "#007AFF",
		Categories: []CategoryConfig{
			{ID: "1", Name: "LeetCode", Color: "#FF6B6B"},
			{ID: "2", Name: "Applications", Color: "#4ECDC4"},
			{ID: "3", Name: "Learning", Color: "#45B7D1"},
			{ID: "4", Name: "Meeting", Color: "#FFA07A"},
			{ID: "5", Name: "Break", Color: "#95E1D3"},
		},
		Notifications: true,
		SoundEnabled:  true,
	}
}
