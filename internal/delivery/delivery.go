// Package delivery contains the transports that expose the game.
package delivery

import "context"

// Delivery is a transport that serves until its context ends or it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
