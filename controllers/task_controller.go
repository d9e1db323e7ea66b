package controllers

import (
	"errors"
	"net/http"

	"github.com/ParamSingh05/task-management-system/config"
	"github.com/ParamSingh05/task-management-system/middleware"
	"github.com/ParamSingh05/task-management-system/models"
	"github.com/ParamSingh05/task-management-system/stores"

	"github.com/gin-gonic/gin"
)

// TaskController 任务控制器
// 所有操作都以中间件解析出的用户身份限定可见范围
type TaskController struct {
	tasks *stores.TaskStore
}

func NewTaskController(tasks *stores.TaskStore) *TaskController {
	return &TaskController{tasks: tasks}
}

// GetAllTasks 获取当前用户的全部任务, 按创建时间倒序
func (tc *TaskController) GetAllTasks(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	tasks, err := tc.tasks.List(userID)
	if err != nil {
		config.Logger.Errorw("任务列表查询失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching tasks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(tasks),
		"tasks":   tasks,
	})
}

// GetTaskByID 获取单个任务
// 任务不存在与归属他人返回相同的404, 不泄露任务是否存在
func (tc *TaskController) GetTaskByID(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	taskID := c.Param("id")

	task, err := tc.tasks.Get(userID, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Task not found",
			})
			return
		}
		config.Logger.Errorw("任务查询失败", "error", err, "userID", userID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

// CreateTask 创建任务
func (tc *TaskController) CreateTask(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title is required",
		})
		return
	}

	taskID, err := tc.tasks.Create(userID, req)
	if err != nil {
		config.Logger.Errorw("任务创建失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating task",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"taskId":  taskID,
	})
}

// UpdateTask 更新任务
func (tc *TaskController) UpdateTask(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	taskID := c.Param("id")

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title is required",
		})
		return
	}

	if err := tc.tasks.Update(userID, taskID, req); err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Task not found",
			})
			return
		}
		config.Logger.Errorw("任务更新失败", "error", err, "userID", userID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
	})
}

// DeleteTask 删除任务
func (tc *TaskController) DeleteTask(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	taskID := c.Param("id")

	if err := tc.tasks.Delete(userID, taskID); err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Task not found",
			})
			return
		}
		config.Logger.Errorw("任务删除失败", "error", err, "userID", userID, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// GetTaskStats 获取任务统计
func (tc *TaskController) GetTaskStats(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	stats, err := tc.tasks.Stats(userID)
	if err != nil {
		config.Logger.Errorw("任务统计查询失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching statistics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
