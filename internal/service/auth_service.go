package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"strconv"
	"time"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/util"
	"maths_point_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) (string, error) {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: user lookup: %v", util.ErrDependency, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)
	user.Role = model.ValidRole(string(user.Role))

	if err := s.UserRepo.Create(user); err != nil {
		return "", fmt.Errorf("%w: create user: %v", util.ErrDependency, err)
	}

	jwtCfg := s.Cfg.JWTSettings()
	return util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
}

// Login is role-scoped: the account must exist under the requested role tab.
func (s *AuthService) Login(email, password string, role model.UserRole) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmailAndRole(email, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("%w: no %s account found with this email", util.ErrNotFound, role)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: user lookup: %v", util.ErrDependency, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	jwtCfg := s.Cfg.JWTSettings()
	token, err := util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	_ = s.UserRepo.UpdateLastLogin(user.ID)

	return token, user, nil
}

// CheckToken re-validates a token against the user table; a deleted account
// invalidates outstanding tokens immediately.
func (s *AuthService) CheckToken(tokenString string) (*model.User, error) {
	claims, err := util.ParseJWT(tokenString, s.Cfg.JWTSettings().Secret)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// RequestPasswordReset mints a single-use token, keeps it in redis with a
// short TTL and mails the reset link when SMTP is configured.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no account found with this email", util.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: user lookup: %v", util.ErrDependency, err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	key := "reset:" + token
	if err := s.Redis.Set(ctx, key, strconv.FormatUint(uint64(user.ID), 10), resetTokenTTL).Err(); err != nil {
		return fmt.Errorf("%w: store reset token: %v", util.ErrDependency, err)
	}

	mail := s.Cfg.MailSettings()
	link := fmt.Sprintf("%s?token=%s", mail.ResetURL, token)
	if mail.Host == "" {
		// No SMTP in this environment; leave the link in the log for manual delivery.
		logger.Log.Info("password reset requested", zap.String("email", email), zap.String("link", link))
		return nil
	}

	return s.sendResetMail(mail, email, link)
}

func (s *AuthService) sendResetMail(mail config.MailConfig, to, link string) error {
	msg := []byte("To: " + to + "\r\n" +
		"From: " + mail.From + "\r\n" +
		"Subject: Reset your Maths Point password\r\n" +
		"\r\n" +
		"Use the link below to reset your password. It expires in 15 minutes.\r\n\r\n" +
		link + "\r\n")

	addr := fmt.Sprintf("%s:%d", mail.Host, mail.Port)
	auth := smtp.PlainAuth("", mail.Username, mail.Password, mail.Host)
	if err := smtp.SendMail(addr, auth, mail.From, []string{to}, msg); err != nil {
		return fmt.Errorf("%w: send reset mail: %v", util.ErrDependency, err)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and password are required", util.ErrValidation)
	}

	key := "reset:" + token
	val, err := s.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: reset token is invalid or expired", util.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("%w: read reset token: %v", util.ErrDependency, err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: reset token is invalid or expired", util.ErrValidation)
	}

	user, err := s.UserRepo.FindByID(uint(userID))
	if err != nil {
		return fmt.Errorf("%w: user lookup: %v", util.ErrDependency, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.UserRepo.Update(user); err != nil {
		return fmt.Errorf("%w: update password: %v", util.ErrDependency, err)
	}

	s.Redis.Del(ctx, key)
	return nil
}
