package services

import (
	"errors"
	"strings"
	"time"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/configs"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	// Messages match the panel auth boxes.
	ErrWrongAreaCode = errors.New("kiritilgan kod noto'g'ri")
	ErrWrongRoleCode = errors.New("ruxsat kodi noto'g'ri")
	ErrUnknownRole   = errors.New("unknown role")
)

const RolePanel = "panel"

var panelRoles = map[string]bool{
	"manager": true,
	"admin":   true,
	"courier": true,
}

// CodeVerifier compares a submitted code against the configured value.
// Behind an interface so the comparison policy is swappable without
// touching the handlers.
type CodeVerifier interface {
	Verify(input, configured string) bool
}

// envCodeVerifier treats "$2..." configured values as bcrypt hashes and
// anything else as a plain code.
type envCodeVerifier struct{}

func (envCodeVerifier) Verify(input, configured string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(input)) == nil
	}
	return input == configured
}

type AccessService struct {
	codes    configs.PanelCodes
	secret   string
	ttl      time.Duration
	verifier CodeVerifier
}

func NewAccessService(codes configs.PanelCodes, secret string, ttl time.Duration) *AccessService {
	return &AccessService{codes: codes, secret: secret, ttl: ttl, verifier: envCodeVerifier{}}
}

// WithVerifier swaps the comparison policy (tests, future stores).
func (s *AccessService) WithVerifier(v CodeVerifier) *AccessService {
	s.verifier = v
	return s
}

// Unlock is stage one: the shared area code opens the role-selection
// screen. Returns a token carrying the "panel" role.
func (s *AccessService) Unlock(code string) (string, error) {
	if !s.verifier.Verify(code, s.codes.Area) {
		return "", ErrWrongAreaCode
	}
	return utils.GenerateToken(RolePanel, s.secret, s.ttl)
}

// GrantRole is stage two: a per-role code trades the panel token for a
// role token. Wrong code changes nothing; retries are unlimited.
func (s *AccessService) GrantRole(role, code string) (string, error) {
	if !panelRoles[role] {
		return "", ErrUnknownRole
	}
	var configured string
	switch role {
	case "manager":
		configured = s.codes.Manager
	case "admin":
		configured = s.codes.Admin
	case "courier":
		configured = s.codes.Courier
	}
	if !s.verifier.Verify(code, configured) {
		return "", ErrWrongRoleCode
	}
	return utils.GenerateToken(role, s.secret, s.ttl)
}
