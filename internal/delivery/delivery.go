// Package delivery holds the entry points that expose the usecases: the HTTP
// API and the background workers.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
