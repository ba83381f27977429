package entity

import "github.com/google/uuid"

// DeleteScope selects the target set of a lifecycle operation.
type DeleteScope string

const (
	ScopeSingle   DeleteScope = "single"
	ScopeSelected DeleteScope = "selected"
	ScopeAll      DeleteScope = "all"
)

// DeleteType selects between a status flip and row removal.
type DeleteType string

const (
	DeleteSoft DeleteType = "soft"
	DeleteHard DeleteType = "hard"
)

// DeleteRequest describes a soft or hard delete over a scope.
type DeleteRequest struct {
	Scope DeleteScope
	Type  DeleteType
	IDs   []uuid.UUID
}

// IsAll reports whether the request targets every row.
func (r DeleteRequest) IsAll() bool {
	return r.Scope == ScopeAll
}
