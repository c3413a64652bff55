package service

import (
	"context"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EnrollmentService struct {
	enrollmentRepo ports.EnrollmentRepo
	courseRepo     ports.CourseRepo
	notifier       ports.StudioNotifier
	logger         logger.Logger
}

func NewEnrollmentService(
	enrollmentRepo ports.EnrollmentRepo,
	courseRepo ports.CourseRepo,
	notifier ports.StudioNotifier,
	logger logger.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Enroll books a spot for the member and, unless requireCredits is false,
// debits one credit. Capacity, duplicate and balance checks happen inside
// the repository transaction, so two racing calls cannot overshoot the last
// spot or the last credit.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, memberID string, requireCredits bool) (*domain.CourseFill, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}

	if err = s.enrollmentRepo.Enroll(ctx, courseID, memberID, requireCredits); err != nil {
		return nil, err
	}

	s.logger.Info("member enrolled",
		logger.String("course_id", courseID),
		logger.String("member_id", memberID),
		logger.Any("require_credits", requireCredits),
	)

	fill, err := s.fill(ctx, course)
	if err != nil {
		return nil, err
	}

	memberName := memberID
	for _, entry := range fill.Roster {
		if entry.MemberID == memberID {
			memberName = entry.Name
			break
		}
	}
	go s.notifier.NotifyEnrollment(context.WithoutCancel(ctx), course.Name, memberName)

	return fill, nil
}

// Unenroll removes the enrollment if present; removing a missing one is a
// no-op. The refund credit is only written when a row was actually removed.
func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, memberID string, refund bool) (*domain.CourseFill, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}

	deleted, err := s.enrollmentRepo.Unenroll(ctx, courseID, memberID, refund)
	if err != nil {
		return nil, err
	}

	if deleted {
		s.logger.Info("member unenrolled",
			logger.String("course_id", courseID),
			logger.String("member_id", memberID),
			logger.Any("refund", refund),
		)
	}

	return s.fill(ctx, course)
}

func (s *EnrollmentService) Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error) {
	return s.enrollmentRepo.Roster(ctx, courseID)
}

func (s *EnrollmentService) Fill(ctx context.Context, courseID string) (*domain.CourseFill, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}

	return s.fill(ctx, course)
}

func (s *EnrollmentService) fill(ctx context.Context, course *domain.Course) (*domain.CourseFill, error) {
	roster, err := s.enrollmentRepo.Roster(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return &domain.CourseFill{
		CourseID:   course.ID,
		CourseName: course.Name,
		Capacity:   course.Capacity,
		Enrolled:   len(roster),
		FillRate:   domain.FillRate(len(roster), course.Capacity),
		Roster:     roster,
	}, nil
}

func (s *EnrollmentService) CreateCourse(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}

	course := &domain.Course{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	return course, nil
}

func (s *EnrollmentService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return s.courseRepo.List(ctx)
}
