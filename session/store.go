// Package session 提供服务端会话存储
// 会话以不透明的会话ID为键, 通过Cookie下发给客户端
package session

import (
	"context"
	"time"
)

// TTL 会话有效期, 每次认证请求滑动续期
const TTL = 24 * time.Hour

// Data 会话中保存的已验证用户身份
type Data struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// Store 会话存储接口, 解析中间件只依赖该接口,
// 后端可替换为内存/Redis/数据库实现
type Store interface {
	// Get 按会话ID取回身份, 不存在或已过期时ok为false
	Get(ctx context.Context, sid string) (data Data, ok bool, err error)
	// Set 写入会话并重置有效期
	Set(ctx context.Context, sid string, data Data) error
	// Touch 滑动续期, 会话不存在时为空操作
	Touch(ctx context.Context, sid string) error
	// Destroy 删除会话, 幂等
	Destroy(ctx context.Context, sid string) error
}
