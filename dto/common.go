package dto

// PageRequest is the query of every list operation. Order is "asc" or
// "desc" (default). Cursor is the nextCursor of the previous page.
type PageRequest struct {
	Limit  int    `form:"limit" json:"limit" binding:"omitempty,min=0"`
	Cursor string `form:"cursor" json:"cursor"`
	Order  string `form:"order" json:"order" binding:"omitempty,oneof=asc desc"`
	Search string `form:"search" json:"search"`
}

// Page is one slice of an ordered collection. NextCursor is empty when
// IsDone is true.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor"`
	IsDone     bool   `json:"isDone"`
}
