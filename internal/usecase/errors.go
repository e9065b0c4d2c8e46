package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrResumeNotFound = errors.New("resume not found")
)
