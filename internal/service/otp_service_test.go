package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NotEqual(t, byte('0'), code[0])
	}
}

func TestOTPService_RequestAndVerify(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	notifier := &recordingNotifier{}
	svc := NewOTPService(repos.Users, repos.OTPs, notifier)
	user := seedUser(t, repos, "otp@example.com")

	assert.Equal(t, apperrors.ErrUserNotFound, svc.Request(ctx, "ghost@example.com"))
	require.NoError(t, svc.Request(ctx, user.Email))

	code := codePattern.FindString(notifier.last().Body)
	require.NotEmpty(t, code)

	wrong := "000000"
	assert.Equal(t, apperrors.ErrOTPNotFound, svc.Verify(ctx, user.Email, wrong))
	require.NoError(t, svc.Verify(ctx, user.Email, code))
	assert.Equal(t, apperrors.ErrOTPNotFound, svc.Verify(ctx, user.Email, code))

	stored, err := repos.Users.FindBySlugID(ctx, user.SlugID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.NotNil(t, stored.VerifiedAt)
}

func TestOTPService_Expired(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	notifier := &recordingNotifier{}
	svc := NewOTPService(repos.Users, repos.OTPs, notifier).(*otpService)
	user := seedUser(t, repos, "late-otp@example.com")

	require.NoError(t, svc.Request(ctx, user.Email))
	code := codePattern.FindString(notifier.last().Body)

	svc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	assert.Equal(t, apperrors.ErrOTPExpired, svc.Verify(ctx, user.Email, code))
}
