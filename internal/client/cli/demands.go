package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vagali/vagali/internal/client/api"
)

// Demands lists the demands belonging to the logged-in user.
func (a *App) Demands(ctx context.Context) error {
	list, err := a.api.ListDemands(ctx)
	if err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	if len(list) == 0 {
		fmt.Println("No demands yet.")
		return nil
	}
	for _, d := range list {
		fmt.Printf("[%s] %s: %s (CEP %s, service %s)\n", d.Status, d.Title, d.Description, d.CEP, d.Service)
	}
	return nil
}

// NewDemand interactively creates a demand.
func (a *App) NewDemand(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	cep, err := getSimpleText(a.reader, "CEP (8 digits)", os.Stdout)
	if err != nil {
		return err
	}
	service, err := getSimpleText(a.reader, "Service (e.g. eletricista)", os.Stdout)
	if err != nil {
		return err
	}

	d, err := a.api.CreateDemand(ctx, &api.CreateDemandRequest{
		Title:       title,
		Description: description,
		CEP:         cep,
		Service:     service,
	})
	if err != nil {
		if a.checkUnauthorized(ctx, err) {
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Demand created: %s (status %s)\n", d.ID, d.Status)
	return nil
}
