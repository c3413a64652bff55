package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
}
