package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CourseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourseRepo(db *dbpg.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, name, capacity, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.Master.ExecContext(ctx, query, c.ID, c.Name, c.Capacity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT id, name, capacity, created_at
			  FROM courses
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	var c domain.Course
	if err = row.Scan(&c.ID, &c.Name, &c.Capacity, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}

	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, name, capacity, created_at
			  FROM courses
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Course
	for rows.Next() {
		var c domain.Course
		if err = rows.Scan(&c.ID, &c.Name, &c.Capacity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
