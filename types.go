package gitlab

// ListOptions holds the pagination parameters shared by all list
// endpoints.
type ListOptions struct {
	Page    int `url:"page,omitempty" json:"page,omitempty"`
	PerPage int `url:"per_page,omitempty" json:"per_page,omitempty"`
}

// Ptr returns a pointer to v. Option structs use pointer fields so that
// the zero value ("unset") is distinguishable from an explicit zero.
func Ptr[T any](v T) *T {
	return &v
}
