// Package stores 封装所有数据库访问
package stores

import (
	"errors"

	"github.com/ParamSingh05/task-management-system/models"
	"github.com/ParamSingh05/task-management-system/utils"

	"gorm.io/gorm"
)

// ErrDuplicateEmail 邮箱已被注册
var ErrDuplicateEmail = errors.New("邮箱已被注册")

// UserStore 用户存储
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail 按邮箱精确查找用户, 未找到时返回 (nil, nil)
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 按ID查找用户, 未找到时返回 (nil, nil)
func (s *UserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户并返回新用户ID
// 邮箱唯一性由存储层唯一索引保证, 并发注册同一邮箱时后到者失败
func (s *UserStore) Create(name, email, passwordHash string) (string, error) {
	user := models.User{
		ID:       utils.GenerateID(),
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return user.ID, nil
}
