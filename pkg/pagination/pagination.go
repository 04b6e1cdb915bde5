package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params represents offset pagination input
type Params struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// DefaultParams returns default pagination values
func DefaultParams() *Params {
	return &Params{
		Limit:  DefaultLimit,
		Offset: 0,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageInfo describes the position of a page within the full result set
type PageInfo struct {
	HasNextPage     bool    `json:"has_next_page"`
	HasPreviousPage bool    `json:"has_previous_page"`
	StartCursor     *string `json:"start_cursor,omitempty"`
	EndCursor       *string `json:"end_cursor,omitempty"`
}

// Edge wraps a node with its cursor
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// Connection represents a page of items with navigation info
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"page_info"`
	TotalCount int64     `json:"total_count"`
}

// NewConnection builds a connection for items fetched with params.
// cursorOf returns the opaque cursor of an item (usually its id).
func NewConnection[T any](items []T, params *Params, total int64, cursorOf func(T) string) *Connection[T] {
	edges := make([]Edge[T], 0, len(items))
	for _, item := range items {
		edges = append(edges, Edge[T]{Node: item, Cursor: cursorOf(item)})
	}

	info := PageInfo{
		HasNextPage:     int64(params.Offset+params.Limit) < total,
		HasPreviousPage: params.Offset > 0,
	}
	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		info.StartCursor = &start
		info.EndCursor = &end
	}

	return &Connection[T]{
		Edges:      edges,
		PageInfo:   info,
		TotalCount: total,
	}
}
