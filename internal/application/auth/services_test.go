package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	"github.com/bryanwahyu/cad-detect/internal/domain/validation"
)

type recordingSleeper struct{ slept []time.Duration }

func (r *recordingSleeper) Sleep(d time.Duration) { r.slept = append(r.slept, d) }

func newService() (*Service, *recordingSleeper) {
	sl := &recordingSleeper{}
	return &Service{Sleeper: sl, Delay: 1500 * time.Millisecond}, sl
}

func TestLogin_RedirectsPerRole(t *testing.T) {
	svc, sl := newService()

	out := svc.Login(context.Background(), LoginCommand{Role: role.Doctor})
	assert.Equal(t, "/doctor/dashboard", out.Redirect)
	assert.Equal(t, "Welcome back, Doctor!", out.Toast)

	out = svc.Login(context.Background(), LoginCommand{Role: role.Patient, Identifier: "PAT-12345"})
	assert.Equal(t, "/patient/dashboard", out.Redirect)
	assert.Equal(t, "Welcome back!", out.Toast)

	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 1500 * time.Millisecond}, sl.slept)
}

func TestSignup_ChecksMatchBeforeLength(t *testing.T) {
	svc, sl := newService()

	_, err := svc.Signup(context.Background(), SignupCommand{Role: role.Doctor, Password: "abc", ConfirmPassword: "abd"})
	assert.ErrorIs(t, err, validation.ErrPasswordMismatch)

	_, err = svc.Signup(context.Background(), SignupCommand{Role: role.Doctor, Password: "abc", ConfirmPassword: "abc"})
	assert.ErrorIs(t, err, validation.ErrPasswordTooShort)
	assert.Empty(t, sl.slept)

	out, err := svc.Signup(context.Background(), SignupCommand{Role: role.Patient, Password: "abcdef", ConfirmPassword: "abcdef"})
	require.NoError(t, err)
	assert.Equal(t, "/patient/login", out.Redirect)
	assert.Equal(t, "Account created successfully!", out.Toast)
	assert.Len(t, sl.slept, 1)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ResetPassword(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, validation.ErrInvalidEmail)

	out, err := svc.ResetPassword(context.Background(), "doc@hospital.com")
	require.NoError(t, err)
	assert.Equal(t, "Password reset link sent!", out.Toast)
}
