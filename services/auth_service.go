package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/repository"
	"github.com/Nagesh2809/cafe-management/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	policy    RolePolicy
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, policy RolePolicy, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		policy:    policy,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user; the role comes from the policy and is final.
func (s *AuthService) Register(email, password, name string, joinDate *time.Time) (*entity.User, error) {
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	joined := time.Now().UTC()
	if joinDate != nil {
		joined = *joinDate
	}

	user := &entity.User{
		Email:          email,
		Name:           name,
		HashedPassword: string(hashed),
		Role:           s.policy.RoleFor(email),
		JoinDate:       joined,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token with sub=email.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
