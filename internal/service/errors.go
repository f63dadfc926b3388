package service

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrDayNotFound        = errors.New("day not found")
	ErrDuplicateCourse    = errors.New("course already exists")
	ErrDuplicateDay       = errors.New("day already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingDeviceID    = errors.New("device id is required")
)
