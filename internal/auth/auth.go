// Package auth holds credential records, the pluggable credential verifier
// and session-token issuance. Verification is deliberately separated from
// session creation so a real identity check can replace the mock without
// touching routing or handlers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/store"
)

const (
	tokenIssuer = "digigov-service"
	tokenTTL    = 72 * time.Hour
)

// Verifier checks credentials before a session is issued.
type Verifier interface {
	VerifyUser(ctx context.Context, phone, password string) error
	VerifyOfficial(ctx context.Context, employeeID, password string) error
}

type acceptAll struct{}

func (acceptAll) VerifyUser(context.Context, string, string) error     { return nil }
func (acceptAll) VerifyOfficial(context.Context, string, string) error { return nil }

// AcceptAll returns the mock verifier: any well-formed credentials pass.
func AcceptAll() Verifier { return acceptAll{} }

// Service owns the user and official credential collections (plaintext mock
// records, no uniqueness enforcement) and issues signed session tokens.
type Service struct {
	mu        sync.Mutex
	store     store.Store
	verifier  Verifier
	secret    []byte
	users     []model.User
	officials []model.Official
}

func NewService(ctx context.Context, st store.Store, verifier Verifier, secret []byte) (*Service, error) {
	s := &Service{store: st, verifier: verifier, secret: secret}
	if err := st.Load(ctx, store.KeyUsers, &s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := st.Load(ctx, store.KeyOfficials, &s.officials); err != nil {
		return nil, fmt.Errorf("load officials: %w", err)
	}
	return s, nil
}

func (s *Service) newSession(role model.Role, subject string) model.Session {
	return model.Session{
		ID:       uuid.NewString(),
		Role:     role,
		Subject:  subject,
		IssuedAt: time.Now().UTC(),
	}
}

// IssueToken signs session as an HS256 JWT.
func (s *Service) IssueToken(session model.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":  session.ID,
		"role": string(session.Role),
		"sub":  session.Subject,
		"iat":  session.IssuedAt.Unix(),
		"exp":  session.IssuedAt.Add(tokenTTL).Unix(),
		"iss":  tokenIssuer,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates tokenStr and rebuilds the session context.
func (s *Service) ParseToken(tokenStr string) (model.Session, error) {
	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return model.Session{}, fmt.Errorf("auth: invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return model.Session{}, errors.New("auth: invalid token")
	}
	session := model.Session{}
	if v, ok := claims["sid"].(string); ok {
		session.ID = v
	}
	if v, ok := claims["role"].(string); ok {
		session.Role = model.Role(v)
	}
	if v, ok := claims["sub"].(string); ok {
		session.Subject = v
	}
	if v, ok := claims["iat"].(float64); ok {
		session.IssuedAt = time.Unix(int64(v), 0).UTC()
	}
	return session, nil
}

// RegisterUser appends the record, persists the collection and opens a
// session for the new user. On persist failure the append is rolled back.
func (s *Service) RegisterUser(ctx context.Context, u model.User) (model.Session, string, error) {
	s.mu.Lock()
	s.users = append(s.users, u)
	if err := s.store.Save(ctx, store.KeyUsers, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.mu.Unlock()
		return model.Session{}, "", fmt.Errorf("save users: %w", err)
	}
	s.mu.Unlock()
	return s.openSession(model.RoleCitizen, u.Phone)
}

// LoginUser verifies the credentials and opens a citizen session. The mock
// verifier accepts anything well-formed; no record lookup is performed.
func (s *Service) LoginUser(ctx context.Context, phone, password string) (model.Session, string, error) {
	if err := s.verifier.VerifyUser(ctx, phone, password); err != nil {
		return model.Session{}, "", err
	}
	return s.openSession(model.RoleCitizen, phone)
}

// RegisterOfficial appends the record, persists and opens a session.
func (s *Service) RegisterOfficial(ctx context.Context, o model.Official) (model.Session, string, error) {
	s.mu.Lock()
	s.officials = append(s.officials, o)
	if err := s.store.Save(ctx, store.KeyOfficials, s.officials); err != nil {
		s.officials = s.officials[:len(s.officials)-1]
		s.mu.Unlock()
		return model.Session{}, "", fmt.Errorf("save officials: %w", err)
	}
	s.mu.Unlock()
	return s.openSession(model.RoleOfficial, o.EmployeeID)
}

// LoginOfficial verifies the credentials and opens an official session.
func (s *Service) LoginOfficial(ctx context.Context, employeeID, password string) (model.Session, string, error) {
	if err := s.verifier.VerifyOfficial(ctx, employeeID, password); err != nil {
		return model.Session{}, "", err
	}
	return s.openSession(model.RoleOfficial, employeeID)
}

func (s *Service) openSession(role model.Role, subject string) (model.Session, string, error) {
	session := s.newSession(role, subject)
	token, err := s.IssueToken(session)
	if err != nil {
		return model.Session{}, "", fmt.Errorf("sign session token: %w", err)
	}
	return session, token, nil
}

// Users returns a snapshot of the registered user records.
func (s *Service) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Officials returns a snapshot of the registered official records.
func (s *Service) Officials() []model.Official {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Official, len(s.officials))
	copy(out, s.officials)
	return out
}
