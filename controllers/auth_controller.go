package controllers

import (
	"errors"
	"net/http"

	"github.com/ParamSingh05/task-management-system/config"
	"github.com/ParamSingh05/task-management-system/middleware"
	"github.com/ParamSingh05/task-management-system/models"
	"github.com/ParamSingh05/task-management-system/session"
	"github.com/ParamSingh05/task-management-system/stores"
	"github.com/ParamSingh05/task-management-system/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct {
	users    *stores.UserStore
	sessions session.Store
}

func NewAuthController(users *stores.UserStore, sessions session.Store) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

// Register 注册新用户
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Errorw("密码哈希失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error during registration",
		})
		return
	}

	userID, err := ac.users.Create(req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, stores.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Email already registered",
			})
			return
		}
		config.Logger.Errorw("用户创建失败", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error during registration",
		})
		return
	}

	config.Logger.Infow("用户注册成功", "userID", userID, "email", req.Email)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login 登录
// 成功时同时签发两种凭证: 响应体中的令牌和Cookie中的会话,
// 后续请求任选其一即可通过认证
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		config.Logger.Errorw("用户查询失败", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error during login",
		})
		return
	}

	// 邮箱不存在与密码错误返回完全相同的响应, 避免用户枚举
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error during login",
		})
		return
	}

	sid := utils.GenerateID()
	err = ac.sessions.Set(c.Request.Context(), sid, session.Data{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
	})
	if err != nil {
		config.Logger.Errorw("会话创建失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error during login",
		})
		return
	}
	middleware.SetSessionCookie(c, sid)

	config.Logger.Infow("用户登录成功", "userID", user.ID, "email", user.Email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": models.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Logout 登出, 销毁会话
// 令牌无撤销机制, 只能等待自然过期
func (ac *AuthController) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
		if err := ac.sessions.Destroy(c.Request.Context(), sid); err != nil {
			config.Logger.Errorw("会话销毁失败", "error", err, "sid", sid)
		}
	}
	middleware.ClearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// Me 返回当前登录用户信息
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": models.UserResponse{
			ID:    c.GetString(middleware.ContextUserID),
			Name:  c.GetString(middleware.ContextUserName),
			Email: c.GetString(middleware.ContextUserEmail),
		},
	})
}
