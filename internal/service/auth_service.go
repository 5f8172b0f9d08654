package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName имя куки с токеном сессии
	SessionCookieName = "session_token"

	sessionTTL = 24 * time.Hour
)

var errSessionIDMissing = errors.New("session_id not found in token")

type sessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// AuthService выдает и проверяет токены сессий браузера
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// GenerateSessionID генерирует уникальный идентификатор сессии
func (a *AuthService) GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateJWT создает токен для сессии
func (a *AuthService) GenerateJWT(sessionID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет токен и извлекает session_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.SessionID == "" {
		return "", errSessionIDMissing
	}

	return claims.SessionID, nil
}

// GetOrCreateSession извлекает session_id из куки или открывает новую сессию
func (a *AuthService) GetOrCreateSession(r *http.Request, w http.ResponseWriter) (string, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if sessionID, err := a.ValidateJWT(cookie.Value); err == nil {
			return sessionID, nil
		}
	}

	// Куки нет или токен недействителен
	sessionID := a.GenerateSessionID()
	token, err := a.GenerateJWT(sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	return sessionID, nil
}
