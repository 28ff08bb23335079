package out

import (
	"context"
	"time"

	"tempo/internal/modules/tracker/domain"
)

// SessionStore is the single-table persistence boundary. Active returns
// apperrors.ErrNoActiveSession when no row has a NULL end time.
type SessionStore interface {
	Active(ctx context.Context) (domain.Session, error)
	Start(ctx context.Context, topic string, start time.Time) (domain.Session, error)
	Finish(ctx context.Context, id int64, end time.Time) error
	Recent(ctx context.Context, limit int) ([]domain.Session, error)
	Closed(ctx context.Context) ([]domain.Session, error)
	Insert(ctx context.Context, topic string, start, end time.Time) (domain.Session, error)
	UpdateTopic(ctx context.Context, id int64, topic string) error
	UpdateStart(ctx context.Context, id int64, start time.Time) error
	UpdateEnd(ctx context.Context, id int64, end time.Time) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) error
	Exists(ctx context.Context, id int64) (bool, error)
}
