package advisor

import "context"

// Client sends a prompt to a completion backend and returns the raw reply
// text. Implementations translate backend failures into the classified
// errors in errors.go before returning them; anything they cannot classify
// passes through unchanged.
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}
