package service

import (
	"errors"

	"spill/internal/model"
	"spill/internal/pkg"
	"spill/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	repo *mysql.UserRepository
	smtp *pkg.SMTPConfig // nil disables the welcome mail
}

func NewAuthService(db *gorm.DB, smtp *pkg.SMTPConfig) *AuthService {
	return &AuthService{
		repo: &mysql.UserRepository{DB: db},
		smtp: smtp,
	}
}

// AuthResult pairs a fresh token with the user it belongs to.
type AuthResult struct {
	Token string
	User  *model.User
}

func (s *AuthService) Register(username, email, password string) (*AuthResult, error) {
	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	// fire-and-forget welcome mail
	if s.smtp != nil {
		go func(to, name string) {
			if err := pkg.SendEmail(*s.smtp, to, "Welcome to Spill", pkg.WelcomeHTML(name)); err != nil {
				pkg.Log.Warn().Err(err).Str("to", to).Msg("welcome mail failed")
			}
		}(user.Email, user.Username)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login fails identically for an unknown email and a wrong password.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) CurrentUser(userID uint64) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
