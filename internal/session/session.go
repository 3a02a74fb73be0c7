// Package session carries the self-declared profile of a dashboard user in
// a signed token. This exists so every request arrives with its context
// spelled out instead of being read from ambient shared state. It is not an
// authentication boundary: the role is whatever the caller declared.
package session

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Profile is the ambient context a view collaborator presents with each
// request: who they claim to be and which rows they care about.
type Profile struct {
	Role           string `json:"role"`
	Block          string `json:"block"`
	Room           string `json:"room"`
	Name           string `json:"name"`
	WorkerCategory string `json:"workerCategory"`
}

// Manager issues and decodes profile tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue signs a token carrying the profile claims plus a fresh session ID
// and a 72 hour expiry.
func (m *Manager) Issue(p Profile) (string, error) {
	claims := jwt.MapClaims{
		"sid":             uuid.NewString(),
		"role":            p.Role,
		"block":           p.Block,
		"room":            p.Room,
		"name":            p.Name,
		"worker_category": p.WorkerCategory,
		"exp":             time.Now().Add(72 * time.Hour).Unix(),
		"iss":             "hosteltrack-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and returns the carried profile.
func (m *Manager) Decode(tokenString string) (Profile, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Profile{}, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Profile{}, errors.New("invalid session token")
	}
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	return Profile{
		Role:           str("role"),
		Block:          str("block"),
		Room:           str("room"),
		Name:           str("name"),
		WorkerCategory: str("worker_category"),
	}, nil
}
