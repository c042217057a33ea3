package queries

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// BubbleQuery lists the systems around a reference system.
// A zero Radius uses system.DefaultBubbleRadius.
type BubbleQuery struct {
	SystemID int
	Radius   float64
}

// Neighbour is a system together with its distance from the bubble center
type Neighbour struct {
	System   *system.System
	Distance float64
}

// BubbleResponse holds the center and its neighbours, nearest first
type BubbleResponse struct {
	Center     *system.System
	Radius     float64
	Neighbours []Neighbour
}

// BubbleHandler handles the Bubble query
type BubbleHandler struct {
	systems system.Repository
}

// NewBubbleHandler creates a new BubbleHandler
func NewBubbleHandler(systems system.Repository) *BubbleHandler {
	return &BubbleHandler{systems: systems}
}

// Handle executes the Bubble query
func (h *BubbleHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*BubbleQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BubbleQuery")
	}

	var opts []system.BubbleOption
	if query.Radius != 0 {
		opts = append(opts, system.WithRadius(query.Radius))
	}
	params, err := system.NewBubbleParams(opts...)
	if err != nil {
		return nil, err
	}

	center, err := h.systems.Load(ctx, query.SystemID)
	if err != nil {
		return nil, err
	}

	systems, err := h.systems.Bubble(ctx, center.ID(), system.WithRadius(params.Radius))
	if err != nil {
		return nil, err
	}

	neighbours := make([]Neighbour, 0, len(systems))
	for _, s := range systems {
		if s.ID() == center.ID() {
			continue
		}
		neighbours = append(neighbours, Neighbour{System: s, Distance: center.DistanceTo(s)})
	}
	slices.SortStableFunc(neighbours, func(a, b Neighbour) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return &BubbleResponse{
		Center:     center,
		Radius:     params.Radius,
		Neighbours: neighbours,
	}, nil
}
