package stores

import (
	"testing"
	"time"

	"github.com/ParamSingh05/task-management-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStoreCreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	store := NewTaskStore(db)

	id, err := store.Create(userID, models.TaskRequest{Title: "买牛奶"})
	require.NoError(t, err)

	task, err := store.Get(userID, id)
	require.NoError(t, err)
	assert.Equal(t, "买牛奶", task.Title)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, models.CategoryPersonal, task.Category)
	assert.Equal(t, userID, task.UserID)
}

func TestTaskStoreOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")
	store := NewTaskStore(db)

	id, err := store.Create(userA, models.TaskRequest{Title: "A的任务"})
	require.NoError(t, err)

	// 其他用户的 get/update/delete 都表现为"未找到"
	_, err = store.Get(userB, id)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = store.Update(userB, id, models.TaskRequest{Title: "篡改"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = store.Delete(userB, id)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// 归属者不受影响
	task, err := store.Get(userA, id)
	require.NoError(t, err)
	assert.Equal(t, "A的任务", task.Title)
}

func TestTaskStoreListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	otherID := createTestUser(t, db, "other@example.com")
	store := NewTaskStore(db)

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i, title := range []string{"第一", "第二", "第三"} {
		id, err := store.Create(userID, models.TaskRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, id)

		// 固定创建时间, 保证排序断言确定
		err = db.Model(&models.Task{}).Where("id = ?", id).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error
		require.NoError(t, err)
	}

	// 其他用户的任务不应出现在列表中
	_, err := store.Create(otherID, models.TaskRequest{Title: "别人的"})
	require.NoError(t, err)

	tasks, err := store.List(userID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, ids[2], tasks[0].ID)
	assert.Equal(t, ids[1], tasks[1].ID)
	assert.Equal(t, ids[0], tasks[2].ID)
}

func TestTaskStoreUpdate(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	store := NewTaskStore(db)

	id, err := store.Create(userID, models.TaskRequest{Title: "原标题"})
	require.NoError(t, err)

	err = store.Update(userID, id, models.TaskRequest{
		Title:    "新标题",
		Priority: models.PriorityHigh,
		Status:   models.StatusCompleted,
		Category: models.CategoryWork,
	})
	require.NoError(t, err)

	task, err := store.Get(userID, id)
	require.NoError(t, err)
	assert.Equal(t, "新标题", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, models.StatusCompleted, task.Status)
	assert.Equal(t, models.CategoryWork, task.Category)
}

func TestTaskStoreDeleteIdempotentNotFound(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	store := NewTaskStore(db)

	id, err := store.Create(userID, models.TaskRequest{Title: "临时任务"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(userID, id))

	// 重复删除同一ID每次都返回未找到, 不会崩溃
	assert.ErrorIs(t, store.Delete(userID, id), ErrTaskNotFound)
	assert.ErrorIs(t, store.Delete(userID, id), ErrTaskNotFound)
}

func TestTaskStoreStats(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	store := NewTaskStore(db)

	for i := 0; i < 2; i++ {
		_, err := store.Create(userID, models.TaskRequest{Title: "待办", Status: models.StatusPending})
		require.NoError(t, err)
	}
	_, err := store.Create(userID, models.TaskRequest{
		Title:    "已完成",
		Status:   models.StatusCompleted,
		Priority: models.PriorityHigh,
	})
	require.NoError(t, err)

	stats, err := store.Stats(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)

	byStatus := map[string]int64{}
	for _, row := range stats.ByStatus {
		byStatus[row.Status] = row.Count
	}
	assert.Equal(t, int64(2), byStatus[models.StatusPending])
	assert.Equal(t, int64(1), byStatus[models.StatusCompleted])

	// 没有任务的状态不补零行
	_, present := byStatus[models.StatusInProgress]
	assert.False(t, present)

	byPriority := map[string]int64{}
	for _, row := range stats.ByPriority {
		byPriority[row.Priority] = row.Count
	}
	assert.Equal(t, int64(2), byPriority[models.PriorityMedium])
	assert.Equal(t, int64(1), byPriority[models.PriorityHigh])
}

func TestTaskStoreStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	store := NewTaskStore(db)

	stats, err := store.Stats(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)

	// 明细必须是空切片而非nil, 否则JSON序列化为null
	require.NotNil(t, stats.ByStatus)
	require.NotNil(t, stats.ByPriority)
	assert.Len(t, stats.ByStatus, 0)
	assert.Len(t, stats.ByPriority, 0)
}
