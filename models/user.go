package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(100)" json:"-"` // bcrypt哈希, 永不下发
	CreatedAt time.Time `json:"createdAt"`
}
