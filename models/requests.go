package models

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskRequest 任务创建/更新请求结构体
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Category    string `json:"category"`
}

// ApplyDefaults 填充缺省的优先级/状态/分类
func (r *TaskRequest) ApplyDefaults() {
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Category == "" {
		r.Category = CategoryPersonal
	}
}
