package cli

import (
	"context"
	"fmt"
)

// Root runs the interactive loop on stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Vagali CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}
