package domain

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrProductNotFound = errors.New("credit product not found")
	ErrFlowNotFound    = errors.New("payment flow not found")
)

var (
	ErrAlreadyEnrolled     = errors.New("member is already enrolled in this course")
	ErrCourseFull          = errors.New("course is full")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrPaymentGateway = errors.New("payment gateway request failed")
)
