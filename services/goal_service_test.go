package services

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap"

	"FocusGo/config"
	"FocusGo/models"
	"FocusGo/storage"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func newTestGoalService() *GoalService {
	store := storage.NewStore(storage.NewMemoryMedium(), zap.NewNop().Sugar())
	return NewGoalService(store)
}

func addGoal(t *testing.T, s *GoalService, title string) models.Goal {
	t.Helper()
	goal, err := s.Add(models.CreateGoalRequest{
		Title:    title,
		Target:   100,
		Unit:     "problems",
		Category: models.GoalCategoryLeetcode,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return goal
}

func TestAddGoalPersistsAndEnablesUndo(t *testing.T) {
	s := newTestGoalService()

	goal := addGoal(t, s, "LeetCode Problems")
	if goal.ID == "" {
		t.Error("服务端应生成 ID")
	}
	goals := s.List()
	if len(goals) != 1 || goals[0].Title != "LeetCode Problems" {
		t.Errorf("目标未持久化: %+v", goals)
	}
	if !s.CanUndo() {
		t.Error("变更后应可撤销")
	}
	if s.CanRedo() {
		t.Error("无撤销记录时不应可重做")
	}
}

func TestAddGoalRejectsInvalid(t *testing.T) {
	s := newTestGoalService()
	_, err := s.Add(models.CreateGoalRequest{Title: "", Target: 100, Category: models.GoalCategoryOther})
	var fieldErrs models.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("期望字段级错误，实际: %v", err)
	}
	if len(s.List()) != 0 {
		t.Error("非法目标不应入库")
	}
	if s.CanUndo() {
		t.Error("失败的变更不应入撤销栈")
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	s := newTestGoalService()

	addGoal(t, s, "First")
	addGoal(t, s, "Second")

	// 撤销回到只有 First 的状态
	goals, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "First" {
		t.Errorf("撤销结果不对: %+v", goals)
	}
	if !s.CanRedo() {
		t.Error("撤销后应可重做")
	}

	// 重做恢复 Second
	goals, err = s.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if len(goals) != 2 || goals[1].Title != "Second" {
		t.Errorf("重做结果不对: %+v", goals)
	}
	// 重做的结果必须已持久化
	if persisted := s.List(); len(persisted) != 2 {
		t.Errorf("重做未落盘: %+v", persisted)
	}
}

func TestMutationClearsRedoStack(t *testing.T) {
	s := newTestGoalService()

	addGoal(t, s, "First")
	addGoal(t, s, "Second")
	if _, err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	// 撤销后的新变更使重做历史失效
	addGoal(t, s, "Third")
	if s.CanRedo() {
		t.Error("普通变更后重做栈应被清空")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	s := newTestGoalService()
	if _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("期望 ErrNothingToUndo，实际: %v", err)
	}
	if _, err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("期望 ErrNothingToRedo，实际: %v", err)
	}
}

func TestUndoStackBounded(t *testing.T) {
	s := newTestGoalService()

	for i := 0; i < maxUndoStates+5; i++ {
		addGoal(t, s, fmt.Sprintf("Goal %d", i))
	}
	// 只能撤销最近 maxUndoStates 次
	undone := 0
	for s.CanUndo() {
		if _, err := s.Undo(); err != nil {
			t.Fatal(err)
		}
		undone++
	}
	if undone != maxUndoStates {
		t.Errorf("撤销次数应为 %d，实际 %d", maxUndoStates, undone)
	}
	// 最旧的快照已被丢弃，剩下的目标数等于溢出的那几个
	if got := s.List(); len(got) != 5 {
		t.Errorf("撤到底后应剩 5 个目标: %d", len(got))
	}
}

func TestUpdateGoalPartialPatch(t *testing.T) {
	s := newTestGoalService()
	goal := addGoal(t, s, "LeetCode Problems")

	current := 42
	updated, err := s.Update(goal.ID, models.UpdateGoalRequest{Current: &current})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Current != 42 {
		t.Errorf("进度未更新: %d", updated.Current)
	}
	if updated.Title != "LeetCode Problems" || updated.Target != 100 {
		t.Errorf("未指定的字段被改动: %+v", updated)
	}
}

func TestUpdateGoalNotFound(t *testing.T) {
	s := newTestGoalService()
	title := "Ghost"
	_, err := s.Update("missing", models.UpdateGoalRequest{Title: &title})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestDeleteGoalUndoRestores(t *testing.T) {
	s := newTestGoalService()
	goal := addGoal(t, s, "Soon deleted")

	if err := s.Delete(goal.ID); err != nil {
		t.Fatal(err)
	}
	if len(s.List()) != 0 {
		t.Error("删除未生效")
	}
	goals, err := s.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 || goals[0].ID != goal.ID {
		t.Errorf("撤销删除未恢复目标: %+v", goals)
	}
}
