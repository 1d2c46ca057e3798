package models

// Pagination is the envelope returned by list endpoints: one page of items
// plus the total number of rows matching the filter, ignoring the window.
type Pagination[T any] struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}
