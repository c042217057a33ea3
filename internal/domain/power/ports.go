package power

import "context"

// Repository loads powers from the Traikoa API
type Repository interface {
	Load(ctx context.Context, id int) (*Power, error)
	List(ctx context.Context) ([]*Power, error)
}
