package models

import (
	"time"
)

// 任务字段取值
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	CategoryWork     = "Work"
	CategoryPersonal = "Personal"
	CategoryStudy    = "Study"
	CategoryOther    = "Other"
)

// Task 任务模型, 所有行均归属单个用户
type Task struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index;not null" json:"user_id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"type:varchar(20);default:Medium" json:"priority"`
	Status      string    `gorm:"type:varchar(20);default:Pending" json:"status"`
	Category    string    `gorm:"type:varchar(20);default:Personal" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 用户删除时级联删除任务
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
