package services

import (
	"errors"
	"sync"

	"FocusGo/models"
	"FocusGo/storage"
	"FocusGo/utils"
)

// 撤销栈容量，超出后丢弃最旧的快照
const maxUndoStates = 10

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// GoalService 目标增删改查，带整集合快照的撤销/重做。
// 两个栈只存在于进程内，重启即清空；任何普通变更都会清空重做栈。
type GoalService struct {
	store *storage.Store

	mu        sync.Mutex
	undoStack [][]models.Goal
	redoStack [][]models.Goal
}

func NewGoalService(store *storage.Store) *GoalService {
	return &GoalService{store: store}
}

func (s *GoalService) List() []models.Goal {
	return s.store.GetGoals()
}

func (s *GoalService) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undoStack) > 0
}

func (s *GoalService) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redoStack) > 0
}

// Add 创建目标，ID 由服务端生成
func (s *GoalService) Add(req models.CreateGoalRequest) (models.Goal, error) {
	goal := models.Goal{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target,
		Current:     req.Current,
		Unit:        req.Unit,
		Deadline:    req.Deadline,
		Category:    req.Category,
		Completed:   req.Completed,
	}
	if errs := models.ValidateGoal(&goal); errs != nil {
		return models.Goal{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.GetGoals()
	next := append(snapshot(current), goal)
	if err := s.store.SaveGoals(next); err != nil {
		return models.Goal{}, err
	}
	s.pushUndoLocked(current)
	return goal, nil
}

// Update 部分更新，空指针字段保持不变
func (s *GoalService) Update(id string, req models.UpdateGoalRequest) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.GetGoals()
	next := snapshot(current)
	index := -1
	for i := range next {
		if next[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Goal{}, storage.ErrNotFound
	}

	goal := next[index]
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Target != nil {
		goal.Target = *req.Target
	}
	if req.Current != nil {
		goal.Current = *req.Current
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}
	if errs := models.ValidateGoal(&goal); errs != nil {
		return models.Goal{}, errs
	}

	next[index] = goal
	if err := s.store.SaveGoals(next); err != nil {
		return models.Goal{}, err
	}
	s.pushUndoLocked(current)
	return goal, nil
}

func (s *GoalService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.GetGoals()
	next := make([]models.Goal, 0, len(current))
	for _, g := range current {
		if g.ID != id {
			next = append(next, g)
		}
	}
	if err := s.store.SaveGoals(next); err != nil {
		return err
	}
	s.pushUndoLocked(current)
	return nil
}

// Undo 弹出撤销栈，当前状态压入重做栈，并持久化弹出的状态
func (s *GoalService) Undo() ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}
	previous := s.undoStack[len(s.undoStack)-1]
	current := s.store.GetGoals()

	if err := s.store.SaveGoals(previous); err != nil {
		return nil, err
	}
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = appendBounded(s.redoStack, current)
	return previous, nil
}

// Redo 撤销的镜像操作
func (s *GoalService) Redo() ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}
	next := s.redoStack[len(s.redoStack)-1]
	current := s.store.GetGoals()

	if err := s.store.SaveGoals(next); err != nil {
		return nil, err
	}
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = appendBounded(s.undoStack, current)
	return next, nil
}

// pushUndoLocked 普通变更入栈快照并清空重做栈，调用方持有锁
func (s *GoalService) pushUndoLocked(state []models.Goal) {
	s.undoStack = appendBounded(s.undoStack, snapshot(state))
	s.redoStack = nil
}

func appendBounded(stack [][]models.Goal, state []models.Goal) [][]models.Goal {
	stack = append(stack, state)
	if len(stack) > maxUndoStates {
		stack = stack[len(stack)-maxUndoStates:]
	}
	return stack
}

func snapshot(goals []models.Goal) []models.Goal {
	return append([]models.Goal(nil), goals...)
}
