package service

import "errors"

var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrCareerNotFound    = errors.New("career not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrPostNotAvailable  = errors.New("post not available")
	ErrWishNotFound      = errors.New("wish post not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrAlreadyWished     = errors.New("post already wished")
	ErrHasDependents     = errors.New("student has dependent rows")
	ErrInvalidPrice      = errors.New("price must be non-negative")
)
