package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vagali/vagali/internal/client/api"
	"github.com/vagali/vagali/internal/client/session"
)

// Whoami prints the local session state without touching the backend.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> id=%s role=%s\n", u.FullName, u.Email, u.ID, u.Role)
	return nil
}

// Profile fetches and prints the full profile from the backend.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.GetProfile(ctx)
	if err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Name:     %s\n", p.FullName)
	fmt.Printf("Email:    %s\n", p.Email)
	fmt.Printf("City:     %s\n", p.City)
	if p.IsProfessional {
		fmt.Printf("Service:  %s\n", p.MainService)
		fmt.Printf("Keywords: %s\n", p.Keywords)
		fmt.Printf("Rating:   %.2f\n", p.Rating)
	}
	if p.Bio != "" {
		fmt.Printf("Bio:      %s\n", p.Bio)
	}
	return nil
}

// SetName updates the display name on the backend first, then reflects the
// confirmed change into the local session.
func (a *App) SetName(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new display name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Name unchanged.")
		return nil
	}

	if _, err := a.api.UpdateProfile(ctx, &api.ProfilePatch{FullName: &name}); err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}
	a.session.SetDisplayName(ctx, name)

	fmt.Println("Name updated.")
	return nil
}

// SwitchRole toggles between client and professional. The backend confirms
// the change before the local session is updated.
func (a *App) SwitchRole(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	newRole := session.RoleProfessional
	if u.Role == session.RoleProfessional {
		newRole = session.RoleClient
	}
	isProfessional := newRole == session.RoleProfessional

	if _, err := a.api.UpdateProfile(ctx, &api.ProfilePatch{IsProfessional: &isProfessional}); err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}
	a.session.SetRole(ctx, newRole)

	fmt.Printf("You are now a %s.\n", newRole)
	return nil
}

// Avatar requests a presigned upload URL for a new avatar image and prints
// it; the actual upload happens outside the CLI (e.g. curl -T photo.jpg).
func (a *App) Avatar(ctx context.Context) error {
	key, url, err := a.api.AvatarUploadURL(ctx)
	if err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Upload your avatar with an HTTP PUT to:\n%s\n(storage key: %s)\n", url, key)
	return nil
}
