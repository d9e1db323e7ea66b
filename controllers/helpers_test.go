package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ParamSingh05/task-management-system/config"
	"github.com/ParamSingh05/task-management-system/models"
	"github.com/ParamSingh05/task-management-system/routes"
	"github.com/ParamSingh05/task-management-system/session"
	"github.com/ParamSingh05/task-management-system/stores"
	"github.com/ParamSingh05/task-management-system/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer 按生产路由装配的完整测试服务
type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions session.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	utils.InitTokens(utils.TokenModeLegacy, "")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sessions := session.NewMemoryStore()
	router := gin.New()
	routes.RegisterRoutes(router, sessions, stores.NewUserStore(db), stores.NewTaskStore(db))

	return &testServer{router: router, db: db, sessions: sessions}
}

// request 发送JSON请求, token与cookies可选
func (s *testServer) request(t *testing.T, method, path string, payload interface{}, token string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin 注册并登录一个用户, 返回令牌和会话Cookie
func (s *testServer) registerAndLogin(t *testing.T, name, email, password string) (token string, cookies []*http.Cookie) {
	t.Helper()

	w := s.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": name, "email": email, "password": password,
	}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": email, "password": password,
	}, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	token, _ = body["token"].(string)
	require.NotEmpty(t, token)

	return token, w.Result().Cookies()
}
