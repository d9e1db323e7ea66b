package models

// UserResponse 用户响应结构体
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StatusCount 按状态聚合的计数行
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// PriorityCount 按优先级聚合的计数行
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

// TaskStats 任务统计结构体, 计数为零的分组不出现在明细中
type TaskStats struct {
	Total      int64           `json:"total"`
	ByStatus   []StatusCount   `json:"byStatus"`
	ByPriority []PriorityCount `json:"byPriority"`
}
