package queryintent

import "context"

// Completer sends a prompt to the language-inference collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
