package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a global expense category. Categories are lookup data:
// expenses hold a weak reference to them and no user owns them.
type Category struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder *int
	CreatedAt    time.Time
}
