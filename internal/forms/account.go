package forms

import (
	"context"
	"fmt"
)

type RegisterForm struct {
	Username        string `form:"username" binding:"required,min=2,max=150"`
	Email           string `form:"email" binding:"required,email,max=150"`
	Password        string `form:"password" binding:"required,min=6,max=72,maxbytes=72"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

// UserLookup answers the uniqueness questions registration asks of storage.
type UserLookup interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CheckAvailability adds field errors for a username or email that another
// account already holds. Fields that already failed validation are skipped.
// The returned error is reserved for storage failures.
func (f *RegisterForm) CheckAvailability(ctx context.Context, users UserLookup, errs Errors) error {
	if _, unreadable := errs[FormField]; unreadable {
		return nil
	}

	if _, bad := errs["username"]; !bad {
		taken, err := users.UsernameExists(ctx, f.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			errs.Add("username", "That username is already taken. Please choose a different one.")
		}
	}

	if _, bad := errs["email"]; !bad {
		taken, err := users.EmailExists(ctx, f.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			errs.Add("email", "That email is already registered. Please use a different one.")
		}
	}

	return nil
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
