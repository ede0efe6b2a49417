package auth

import (
	"context"
	"time"

	"github.com/bryanwahyu/cad-detect/internal/application"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	"github.com/bryanwahyu/cad-detect/internal/domain/validation"
)

// Service simulates the account flows. Nothing is checked against a user
// store: every flow waits a fixed delay and succeeds once its input passes
// validation.
type Service struct {
	Sleeper application.Sleeper
	Delay   time.Duration
}

// Outcome is where the browser goes next and what toast it shows.
type Outcome struct {
	Redirect string
	Toast    string
}

type LoginCommand struct {
	Role       role.Role
	Identifier string
	Password   string
}

// Login always lets the user in.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) Outcome {
	s.wait()
	p := role.ProfileFor(cmd.Role)
	return Outcome{Redirect: p.DashboardPath(), Toast: p.WelcomeToast}
}

type SignupCommand struct {
	Role            role.Role
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup checks the passwords match, then their length, in that order.
func (s *Service) Signup(ctx context.Context, cmd SignupCommand) (Outcome, error) {
	if err := validation.CheckPasswordMatch(cmd.Password, cmd.ConfirmPassword); err != nil {
		return Outcome{}, err
	}
	if err := validation.CheckPassword(cmd.Password); err != nil {
		return Outcome{}, err
	}
	s.wait()
	return Outcome{
		Redirect: role.ProfileFor(cmd.Role).LoginPath(),
		Toast:    "Account created successfully!",
	}, nil
}

// ResetPassword pretends to send a reset link.
func (s *Service) ResetPassword(ctx context.Context, email string) (Outcome, error) {
	if err := validation.CheckEmail(email); err != nil {
		return Outcome{}, err
	}
	s.wait()
	return Outcome{Redirect: "/forgot-password?sent=1", Toast: "Password reset link sent!"}, nil
}

func (s *Service) wait() {
	if s.Sleeper != nil && s.Delay > 0 {
		s.Sleeper.Sleep(s.Delay)
	}
}
