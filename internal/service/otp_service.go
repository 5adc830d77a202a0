package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/labstack/gommon/log"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/notify"
	"restaurant/internal/repository"
)

const otpTTL = 10 * time.Minute

// OTPService issues and verifies one-time codes for account verification.
type OTPService interface {
	Request(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
}

type otpService struct {
	users    repository.UserRepository
	otps     repository.OTPRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewOTPService creates a new OTP service.
func NewOTPService(users repository.UserRepository, otps repository.OTPRepository, notifier notify.Notifier) OTPService {
	return &otpService{users: users, otps: otps, notifier: notifier, now: time.Now}
}

// Request issues a fresh six digit code valid for ten minutes and mails it to the user.
func (s *otpService) Request(ctx context.Context, email string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	otp := &model.OTP{
		UserID:    user.SlugID,
		Code:      code,
		ExpiresAt: s.now().Add(otpTTL).Unix(),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return fmt.Errorf("create otp: %w", err)
	}

	body := fmt.Sprintf("Hi %s,\n\nyour verification code is %s. It expires in 10 minutes.\n", user.Name, code)
	if err := s.notifier.Send(ctx, user.Email, "Verification code", body); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

// Verify checks the latest matching code and marks both the code and the user as verified.
func (s *otpService) Verify(ctx context.Context, email, code string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otps.FindLatest(ctx, user.SlugID, code)
	if err != nil {
		return notFound(err, apperrors.ErrOTPNotFound)
	}
	if otp.Verified {
		return apperrors.ErrOTPNotFound
	}

	now := s.now().Unix()
	if otp.ExpiresAt < now {
		log.Infof("otp for %s expired at %d", user.SlugID, otp.ExpiresAt)
		return apperrors.ErrOTPExpired
	}

	if err := s.otps.MarkVerified(ctx, otp.ID, now); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if err := s.users.MarkVerified(ctx, user.SlugID, now); err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	return nil
}

func (s *otpService) findUser(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// generateCode returns a uniformly random code in 100000..999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
