package sessiontoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken подпись, срок действия или формат токена неверны
	ErrInvalidToken = errors.New("sessiontoken: invalid token")

	// ErrEmptyKey ключ подписи не задан
	ErrEmptyKey = errors.New("sessiontoken: signing key is empty")
)

// Claims содержимое токена сессии. ID (jti) - идентификатор сессии в хранилище.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager подписывает и проверяет HS256 токены
type Manager struct {
	key    []byte
	issuer string
}

func NewManager(key string, issuer string) (*Manager, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Manager{key: []byte(key), issuer: issuer}, nil
}

// Issue выпускает токен
func (m *Manager) Issue(subject, role, sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sessiontoken: sign: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись, издателя и срок действия
func (m *Manager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject or session id", ErrInvalidToken)
	}
	return claims, nil
}
