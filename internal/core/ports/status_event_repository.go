package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// StatusEventRepository stores the restaurant status audit trail.
type StatusEventRepository interface {
	Insert(ctx context.Context, event *domain.StatusEvent) error
}
