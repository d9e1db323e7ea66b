package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ParamSingh05/task-management-system/config"
	"github.com/ParamSingh05/task-management-system/session"
	"github.com/ParamSingh05/task-management-system/stores"
	"github.com/ParamSingh05/task-management-system/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie 会话Cookie名称
const SessionCookie = "session_id"

// gin.Context 中已解析身份的键
const (
	ContextUserID    = "uid"
	ContextUserName  = "uname"
	ContextUserEmail = "uemail"
)

const bearerPrefix = "Bearer "

// AuthMiddleware 认证中间件, 按顺序解析请求身份:
// 1. 有效会话 (直接信任会话内容, 并滑动续期)
// 2. Bearer令牌 (解码 -> 过期校验 -> 回查用户存储取最新姓名/邮箱)
// 3. 两者皆无则 401
func AuthMiddleware(sessions session.Store, users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 优先检查会话
		if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
			data, ok, err := sessions.Get(c.Request.Context(), sid)
			if err != nil {
				config.Logger.Errorw("会话存储读取失败", "error", err, "sid", sid)
			} else if ok {
				if err := sessions.Touch(c.Request.Context(), sid); err != nil {
					config.Logger.Errorw("会话续期失败", "error", err, "sid", sid)
				}
				// rolling: 每次请求重置Cookie有效期
				SetSessionCookie(c, sid)

				setIdentity(c, data.UserID, data.UserName, data.UserEmail)
				c.Next()
				return
			}
		}

		// 检查 Authorization 头中的令牌
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, bearerPrefix) {
			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

			claims, err := utils.ParseToken(tokenString)
			if err != nil {
				message := "Invalid token"
				if errors.Is(err, utils.ErrTokenExpired) {
					message = "Token expired"
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": message,
				})
				return
			}

			// 令牌本身不可信(legacy模式无签名), 回查用户存储确认身份,
			// 并以存储中的最新姓名/邮箱为准
			user, err := users.FindByID(claims.UserID)
			if err != nil {
				config.Logger.Errorw("令牌身份回查失败", "error", err, "userID", claims.UserID)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
				return
			}
			if user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Invalid token",
				})
				return
			}

			setIdentity(c, user.ID, user.Name, user.Email)
			c.Next()
			return
		}

		// 未认证
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized. Please login first.",
		})
	}
}

func setIdentity(c *gin.Context, userID, userName, userEmail string) {
	c.Set(ContextUserID, userID)
	c.Set(ContextUserName, userName)
	c.Set(ContextUserEmail, userEmail)
}

// SetSessionCookie 下发会话Cookie
// httpOnly + SameSite=Lax, secure=false(HTTP部署), 有效期与会话TTL一致
func SetSessionCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sid, int(session.TTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie 使会话Cookie立即失效
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
