package cli

import (
	"context"
	"fmt"
	"log"
)

// Professionals lists professionals, optionally filtered by a search term
// over name, city, service and keywords. The listing is public, no session
// is required.
func (a *App) Professionals(ctx context.Context, search string) error {
	list, err := a.api.ListProfessionals(ctx, search)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(list) == 0 {
		fmt.Println("No professionals found.")
		return nil
	}
	for _, p := range list {
		fmt.Printf("%s: %s (%s) rating %.2f\n", p.FullName, p.MainService, p.City, p.Rating)
	}
	return nil
}
