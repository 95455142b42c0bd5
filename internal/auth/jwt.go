package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

type Manager struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// Claims covers both session flavors. Local accounts set UserID/Username/Role,
// OAuth sessions set OpenID/AppID/Name. Parse returns whichever was signed.
type Claims struct {
	UserID   int64  `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	OpenID   string `json:"openId,omitempty"`
	AppID    string `json:"appId,omitempty"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (m *Manager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.Issuer = m.Issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.TTL))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

func (m *Manager) NewUserToken(user models.User) (string, error) {
	return m.sign(Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

func (m *Manager) NewOAuthToken(openID, appID, name string) (string, error) {
	return m.sign(Claims{
		OpenID: openID,
		AppID:  appID,
		Name:   name,
	})
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
