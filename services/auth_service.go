package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"nunis-api/entity"
	"nunis-api/repository"
	"nunis-api/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login and the OTP password-reset flow.
type AuthService struct {
	userRepo  *repository.UserRepository
	resetRepo *repository.ResetRepository
	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("account is not active")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
)

func NewAuthService(userRepo *repository.UserRepository, resetRepo *repository.ResetRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		otpTTL:    10 * time.Minute,
	}
}

func (s *AuthService) Register(nama, email, password, address, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Nama:     strings.TrimSpace(nama),
		Email:    email,
		Password: string(hashed),
		Address:  strings.TrimSpace(address),
		Phone:    strings.TrimSpace(phone),
		Role:     "customer",
		Status:   1,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != 1 {
		return "", nil, ErrUserBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// ForgotPassword issues a 6-digit OTP and invalidates earlier codes.
// Delivery is a mail hook; for now the code is logged server-side.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.userRepo.FindByEmail(email); err != nil {
		// do not reveal whether the email exists
		return nil
	}

	if err := s.resetRepo.InvalidateForEmail(email); err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	pr := &entity.PasswordReset{
		Email:     email,
		OTP:       otp,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.resetRepo.Create(pr); err != nil {
		return err
	}

	log.Printf("password reset OTP for %s: %s", email, otp)
	return nil
}

func (s *AuthService) VerifyOTP(email, otp string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.resetRepo.FindValid(email, otp, time.Now())
	if err != nil {
		return ErrInvalidOTP
	}
	return nil
}

func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	pr, err := s.resetRepo.FindValid(email, otp, time.Now())
	if err != nil {
		return ErrInvalidOTP
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrInvalidOTP
	}
	if err := s.userRepo.Update(user.ID, map[string]any{"password": string(hashed)}); err != nil {
		return err
	}
	return s.resetRepo.MarkUsed(pr.ID)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
