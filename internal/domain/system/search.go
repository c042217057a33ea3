package system

import (
	"slices"
	"strings"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
)

// DefaultBubbleRadius is the bubble radius in light years used when none is given
const DefaultBubbleRadius = 15.0

// SearchKind tells which criterion a SearchBy carries
type SearchKind int

const (
	searchUnset SearchKind = iota
	SearchKindName
	SearchKindIDs
)

func (k SearchKind) String() string {
	switch k {
	case SearchKindName:
		return "name"
	case SearchKindIDs:
		return "ids"
	default:
		return "unset"
	}
}

// SearchBy is the criterion of a system search: either a name or a list of ids.
// Build one with ByName or ByIDs; the zero value is rejected by Validate.
type SearchBy struct {
	kind SearchKind
	name string
	ids  []int
}

// ByName searches systems by name
func ByName(name string) SearchBy {
	return SearchBy{kind: SearchKindName, name: name}
}

// ByIDs searches systems by id. Ids unknown to the service are silently absent
// from the results.
func ByIDs(ids ...int) SearchBy {
	return SearchBy{kind: SearchKindIDs, ids: slices.Clone(ids)}
}

func (s SearchBy) Kind() SearchKind { return s.kind }
func (s SearchBy) Name() string     { return s.name }
func (s SearchBy) IDs() []int       { return slices.Clone(s.ids) }

// Validate rejects criteria the service cannot answer
func (s SearchBy) Validate() error {
	switch s.kind {
	case SearchKindName:
		if strings.TrimSpace(s.name) == "" {
			return shared.NewValidationError("name", "cannot be empty")
		}
	case SearchKindIDs:
		if len(s.ids) == 0 {
			return shared.NewValidationError("ids", "at least one id is required")
		}
	default:
		return shared.NewValidationError("search", "either a name or a list of ids is required")
	}
	return nil
}

// BubbleOption customizes a bubble query
type BubbleOption func(*BubbleParams)

// BubbleParams holds the resolved parameters of a bubble query
type BubbleParams struct {
	Radius float64
}

// WithRadius overrides DefaultBubbleRadius
func WithRadius(radius float64) BubbleOption {
	return func(p *BubbleParams) {
		p.Radius = radius
	}
}

// NewBubbleParams applies opts over the defaults and validates the result
func NewBubbleParams(opts ...BubbleOption) (BubbleParams, error) {
	params := BubbleParams{Radius: DefaultBubbleRadius}
	for _, opt := range opts {
		opt(&params)
	}
	if params.Radius <= 0 {
		return BubbleParams{}, shared.NewValidationError("radius", "must be positive")
	}
	return params, nil
}
