package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// 令牌编码模式
const (
	TokenModeLegacy = "legacy" // base64(JSON), 可逆无签名
	TokenModeSigned = "signed" // HS256签名, 声明与过期契约不变
)

// TokenTTL 令牌有效期
const TokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("无效的令牌")
	ErrTokenExpired = errors.New("令牌已过期")
)

var (
	tokenMode = TokenModeLegacy
	jwtKey    []byte
)

// IdentityClaims 令牌承载的身份声明
// Timestamp 为签发时刻的Unix毫秒值
type IdentityClaims struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Timestamp int64  `json:"timestamp"`
}

type signedClaims struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

// InitTokens 配置令牌编码模式
// 注意: legacy模式的令牌任何人都能解码和伪造, signed模式才具备完整性保护;
// 切换模式会使已签发的令牌全部失效
func InitTokens(mode, secret string) {
	if mode == "" {
		mode = TokenModeLegacy
	}
	tokenMode = mode
	jwtKey = []byte(secret)
}

// GenerateToken 为已验证的用户身份签发令牌
func GenerateToken(userID, userName, userEmail string) (string, error) {
	now := time.Now()

	if tokenMode == TokenModeSigned {
		claims := &signedClaims{
			UserID:    userID,
			UserName:  userName,
			UserEmail: userEmail,
			Timestamp: now.UnixMilli(),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		return token.SignedString(jwtKey)
	}

	payload, err := json.Marshal(IdentityClaims{
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
		Timestamp: now.UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// ParseToken 解析并校验令牌, 过期或无法解码时返回对应错误
func ParseToken(tokenString string) (*IdentityClaims, error) {
	if tokenMode == TokenModeSigned {
		return parseSignedToken(tokenString)
	}
	return parseLegacyToken(tokenString)
}

func parseLegacyToken(tokenString string) (*IdentityClaims, error) {
	payload, err := base64.StdEncoding.DecodeString(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims IdentityClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	// 签发时刻在未来的声明视为伪造
	issuedAt := time.UnixMilli(claims.Timestamp)
	if issuedAt.After(time.Now()) {
		return nil, ErrInvalidToken
	}
	if time.Since(issuedAt) > TokenTTL {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}

func parseSignedToken(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &signedClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*signedClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return &IdentityClaims{
		UserID:    claims.UserID,
		UserName:  claims.UserName,
		UserEmail: claims.UserEmail,
		Timestamp: claims.Timestamp,
	}, nil
}
