package system

import "context"

// Repository loads systems from the Traikoa API
type Repository interface {
	// Load fetches a single system; a missing id surfaces as a not-found error
	Load(ctx context.Context, id int) (*System, error)

	// Search returns every system matching the criterion, possibly none
	Search(ctx context.Context, by SearchBy) ([]*System, error)

	// Bubble returns the systems within a radius of the system with the given id
	Bubble(ctx context.Context, id int, opts ...BubbleOption) ([]*System, error)
}

// Loader is the subset of Repository needed to fetch one system
type Loader interface {
	Load(ctx context.Context, id int) (*System, error)
}
