package stores

import (
	"errors"

	"github.com/ParamSingh05/task-management-system/models"
	"github.com/ParamSingh05/task-management-system/utils"

	"gorm.io/gorm"
)

// ErrTaskNotFound 任务不存在或不属于当前用户
// 两种情况共用同一错误, 避免向未授权调用方泄露任务是否存在
var ErrTaskNotFound = errors.New("任务未找到")

// TaskStore 任务存储, 所有读写都以 (id, user_id) 复合谓词限定归属
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// List 返回用户的全部任务, 按创建时间倒序
func (s *TaskStore) List(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get 按 (id, user_id) 取单个任务
func (s *TaskStore) Get(userID, taskID string) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create 创建任务, 归属强制取当前用户, 忽略客户端传入的任何归属信息
func (s *TaskStore) Create(userID string, req models.TaskRequest) (string, error) {
	req.ApplyDefaults()

	task := models.Task{
		ID:          utils.GenerateID(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return "", err
	}
	return task.ID, nil
}

// Update 更新任务, 归属校验与写入在同一条复合谓词UPDATE中完成,
// 不拆分为先查后写
func (s *TaskStore) Update(userID, taskID string, req models.TaskRequest) error {
	req.ApplyDefaults()

	result := s.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"priority":    req.Priority,
			"status":      req.Status,
			"category":    req.Category,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete 删除任务, 同样的复合谓词约束, 重复删除返回 ErrTaskNotFound
func (s *TaskStore) Delete(userID, taskID string) error {
	result := s.db.Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Stats 统计用户任务总数及按状态/优先级的分组计数
// 计数为零的状态/优先级不会出现在结果中
func (s *TaskStore) Stats(userID string) (*models.TaskStats, error) {
	// 明细切片初始化为空, 无任务时序列化为 [] 而非 null
	stats := &models.TaskStats{
		ByStatus:   []models.StatusCount{},
		ByPriority: []models.PriorityCount{},
	}

	err := s.db.Model(&models.Task{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&stats.ByStatus).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Task{}).
		Select("priority, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("priority").
		Scan(&stats.ByPriority).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
