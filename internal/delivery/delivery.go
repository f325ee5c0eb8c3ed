// Package delivery defines the contract every transport adapter implements.
package delivery

import "context"

// Delivery is a serving surface of the application, e.g. the HTTP API.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
