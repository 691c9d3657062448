package models

// CustomerFilter narrows a customer search. A nil field does not filter.
type CustomerFilter struct {
	Name  *string
	Email *string
	Phone *string
}

// IsEmpty reports whether the filter matches every customer
func (f CustomerFilter) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.Phone == nil
}

// Page is a window of items together with the size of the full result set.
// Offset and Limit echo the window that was actually applied.
type Page[T any] struct {
	TotalItems int64 `json:"total_items"`
	Items      []T   `json:"items"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}

// CustomerSearchResult is the outcome of a customer search
type CustomerSearchResult = Page[Customer]

// InteractionList is a window over one customer's interactions
type InteractionList = Page[Interaction]
