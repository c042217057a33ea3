package controlsystem

import "context"

// Repository loads control systems from the Traikoa API, each with its host system attached
type Repository interface {
	Load(ctx context.Context, id int) (*ControlSystem, error)
	Search(ctx context.Context, ids []int) ([]*ControlSystem, error)
}
