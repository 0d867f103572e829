package models

import (
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// The engine keeps every collection in memory behind a repository interface.
// Each repository guards its slice with its own lock; invariants that span
// entities are checked by the services using already-committed reads, so no
// cross-repository transaction is needed.
