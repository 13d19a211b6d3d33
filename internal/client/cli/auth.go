package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/vagali/vagali/internal/client/api"
	"github.com/vagali/vagali/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, password, display name, and account type,
// then creates the account via the backend. Registration does not log the
// user in; they are asked to login afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Register as professional? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	req := &api.RegisterRequest{
		Email:          email,
		Password:       string(password),
		FullName:       fullName,
		IsProfessional: answer == "y" || answer == "Y",
	}
	if err := a.api.Register(ctx, req); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Account created, you can login now.")
	return nil
}

// Login prompts for credentials and authenticates through the session
// manager. Whatever the underlying cause, a failed attempt prints the same
// generic message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Logout clears the session. Always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// checkUnauthorized reacts to a rejected credential on any authorized call:
// the backend no longer recognizes the token, so the local session must be
// logged out to stay consistent with the backend-side validity.
func (a *App) checkUnauthorized(ctx context.Context, err error) bool {
	if errors.Is(err, api.ErrUnauthorized) {
		a.session.Logout(ctx)
		fmt.Println("Session expired, you have been logged out.")
		return true
	}
	return false
}
