package stores

import (
	"testing"

	"github.com/ParamSingh05/task-management-system/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存SQLite数据库并完成迁移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	return db
}

// createTestUser 插入一个测试用户并返回其ID
func createTestUser(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()

	users := NewUserStore(db)
	id, err := users.Create("测试用户", email, "$2a$10$fakehashfakehashfakehash")
	require.NoError(t, err)
	return id
}
