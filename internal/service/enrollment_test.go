package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEnrollmentService(t *testing.T) (*mocks.MockEnrollmentRepo, *mocks.MockCourseRepo, *mocks.MockStudioNotifier, *EnrollmentService) {
	t.Helper()
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	courseRepo := mocks.NewMockCourseRepo(t)
	notifier := mocks.NewMockStudioNotifier(t)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo, notifier, newTestLogger(t))
	return enrollmentRepo, courseRepo, notifier, svc
}

func TestEnrollmentService_Enroll_Success(t *testing.T) {
	enrollmentRepo, courseRepo, notifier, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 10}
	roster := []domain.RosterEntry{
		{MemberID: "m1", Name: "Alice Martin", EnrolledAt: time.Now()},
	}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Enroll(mock.Anything, "c1", "m1", true).Return(nil)
	enrollmentRepo.EXPECT().Roster(mock.Anything, "c1").Return(roster, nil)
	notifier.EXPECT().NotifyEnrollment(mock.Anything, "Pilates", "Alice Martin").Return()

	fill, err := svc.Enroll(context.Background(), "c1", "m1", true)

	require.NoError(t, err)
	assert.Equal(t, 1, fill.Enrolled)
	assert.Equal(t, 10, fill.Capacity)
	assert.Equal(t, 10, fill.FillRate)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEnrollmentService_Enroll_CourseNotFound(t *testing.T) {
	_, courseRepo, _, svc := newEnrollmentService(t)

	courseRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCourseNotFound)

	_, err := svc.Enroll(context.Background(), "missing", "m1", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestEnrollmentService_Enroll_CourseFull(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 1}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Enroll(mock.Anything, "c1", "m2", true).Return(domain.ErrCourseFull)

	_, err := svc.Enroll(context.Background(), "c1", "m2", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseFull)
}

func TestEnrollmentService_Enroll_InsufficientCredits(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 10}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Enroll(mock.Anything, "c1", "m1", true).Return(domain.ErrInsufficientCredits)

	_, err := svc.Enroll(context.Background(), "c1", "m1", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
}

func TestEnrollmentService_Enroll_AlreadyEnrolled(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 10}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Enroll(mock.Anything, "c1", "m1", true).Return(domain.ErrAlreadyEnrolled)

	_, err := svc.Enroll(context.Background(), "c1", "m1", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Unenroll_Refund(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 10}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Unenroll(mock.Anything, "c1", "m1", true).Return(true, nil)
	enrollmentRepo.EXPECT().Roster(mock.Anything, "c1").Return(nil, nil)

	fill, err := svc.Unenroll(context.Background(), "c1", "m1", true)

	require.NoError(t, err)
	assert.Equal(t, 0, fill.Enrolled)
}

func TestEnrollmentService_Unenroll_NotEnrolledIsNoop(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 10}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Unenroll(mock.Anything, "c1", "ghost", true).Return(false, nil)
	enrollmentRepo.EXPECT().Roster(mock.Anything, "c1").Return(nil, nil)

	_, err := svc.Unenroll(context.Background(), "c1", "ghost", true)

	require.NoError(t, err)
}

func TestEnrollmentService_CreateCourse_ZeroCapacity(t *testing.T) {
	_, courseRepo, _, svc := newEnrollmentService(t)

	courseRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	course, err := svc.CreateCourse(context.Background(), domain.CreateCourseInput{
		Name:     "Atelier fermé",
		Capacity: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, course.Capacity)
	assert.NotEmpty(t, course.ID)
}

func TestEnrollmentService_CreateCourse_Validation(t *testing.T) {
	_, _, _, svc := newEnrollmentService(t)

	_, err := svc.CreateCourse(context.Background(), domain.CreateCourseInput{Capacity: 5})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateCourse(context.Background(), domain.CreateCourseInput{Name: "Yoga", Capacity: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnrollmentService_Fill_EmptyCourse(t *testing.T) {
	enrollmentRepo, courseRepo, _, svc := newEnrollmentService(t)

	course := &domain.Course{ID: "c1", Name: "Pilates", Capacity: 0}

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(course, nil)
	enrollmentRepo.EXPECT().Roster(mock.Anything, "c1").Return(nil, nil)

	fill, err := svc.Fill(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 0, fill.FillRate) // zero capacity never divides
}

func TestEnrollmentService_Roster_RepoError(t *testing.T) {
	enrollmentRepo, _, _, svc := newEnrollmentService(t)

	enrollmentRepo.EXPECT().Roster(mock.Anything, "c1").Return(nil, errors.New("db down"))

	_, err := svc.Roster(context.Background(), "c1")

	require.Error(t, err)
}
