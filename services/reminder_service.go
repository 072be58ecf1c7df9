package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"FocusGo/models"
	"FocusGo/storage"
)

// ReminderService 周期扫描即将开始的任务并发出提醒日志。
// 提醒开关跟随设置里的 notifications；具体的提醒 UI 由前端负责。
type ReminderService struct {
	store     *storage.Store
	logger    *zap.SugaredLogger
	cron      *cron.Cron
	lookahead time.Duration
	now       func() time.Time

	mu       sync.Mutex
	notified map[string]time.Time // 实例ID → 开始时间，开始时间过后清理
}

func NewReminderService(store *storage.Store, logger *zap.SugaredLogger, lookahead time.Duration) *ReminderService {
	if lookahead <= 0 {
		lookahead = 15 * time.Minute
	}
	return &ReminderService{
		store:     store,
		logger:    logger,
		cron:      cron.New(cron.WithSeconds()),
		lookahead: lookahead,
		now:       time.Now,
		notified:  map[string]time.Time{},
	}
}

// Start 按固定间隔注册扫描任务并启动调度器
func (s *ReminderService) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), s.checkUpcoming); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReminderService) checkUpcoming() {
	settings := s.store.GetSettings()
	if !settings.Notifications {
		return
	}

	now := s.now()
	horizon := now.Add(s.lookahead)
	upcoming := ExpandTasksInRange(s.store.GetTasks(), now, horizon)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 已开始的任务不会再次提醒，对应记录直接清理
	for id, start := range s.notified {
		if start.Before(now) {
			delete(s.notified, id)
		}
	}

	for _, task := range upcoming {
		if task.Status != models.StatusPending && task.Status != models.StatusInProgress {
			continue
		}
		if task.StartTime.Before(now) {
			continue
		}
		if _, seen := s.notified[task.ID]; seen {
			continue
		}
		s.notified[task.ID] = task.StartTime
		s.logger.Infow("任务即将开始",
			"taskID", task.ID,
			"title", task.Title,
			"startTime", task.StartTime,
		)
	}
}
