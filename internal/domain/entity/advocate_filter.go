package entity

// AdvocateFilter is a domain-level filter for searching advocates.
// Used by repository layer to avoid coupling with delivery DTOs.
type AdvocateFilter struct {
	Search string // Trimmed free-text term; empty means no filter
	Limit  int
	Offset int
}
