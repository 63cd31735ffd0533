package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carboncell/user-auth/internal/core/domain"
	"github.com/carboncell/user-auth/internal/core/ports"
)

// AuthService implements the sign-in and sign-up decision flows.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// SignIn verifies the credential pair against the store. Unknown username and
// wrong password both collapse into ErrInvalidCredentials so the caller
// cannot tell which check failed.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.SignInResult{
		Principal: domain.Principal{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			Authorities: user.Authorities(),
		},
		Token: token,
	}, nil
}

// SignUp registers a new user. Username and email existence are checked in
// that order and short-circuit with distinct rejections; the unique indexes
// on the store remain the actual backstop against concurrent duplicates.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string, roleTokens []string) (string, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return "", domain.ErrUsernameTaken
	}

	inUse, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if inUse {
		return "", domain.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	roles, err := s.resolveRoles(ctx, roleTokens)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return domain.DisplayLabel(roles), nil
}

// resolveRoles maps requested role tokens to stored Role entities. An empty
// request assigns exactly the base role; duplicates collapse; unrecognized
// tokens resolve to the base role rather than erroring. A mapped role missing
// from reference data is a configuration failure.
func (s *AuthService) resolveRoles(ctx context.Context, roleTokens []string) ([]domain.Role, error) {
	names := make([]string, 0, 1)
	seen := make(map[string]struct{})

	if len(roleTokens) == 0 {
		names = append(names, domain.RoleUser)
	} else {
		for _, token := range roleTokens {
			name := domain.MapRoleRequest(token)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		role, err := s.repo.FindRoleByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrRoleNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, name)
			}
			return nil, fmt.Errorf("find role %s: %w", name, err)
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"id":    user.ID,
		"email": user.Email,
		"roles": user.Authorities(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
