package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MinRating      = 1
	MaxRating      = 10
)

// SignUpForm checks every field before the account-creation request is issued, so
// the backend is never contacted with input it would reject anyway.
func SignUpForm(name, username, password, email string) error {

	var errs = []error{}

	errs = append(errs, Username(username))

	errs = append(errs, Email(email))

	errs = append(errs, Password(password))

	if strings.TrimSpace(name) == "" {
		errs = append(errs, errors.New("empty name"))
	}

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	return nil
}

// Rating rejects values outside 1..10. Zero in particular is the "nothing
// selected yet" sentinel of the callers and must never be stored.
func Rating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d; got %d", MinRating, MaxRating, rating)
	}
	return nil
}

func ReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("empty review")
	}
	return nil
}
