package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("empty URL")
	ErrDuplicateURL       = errors.New("URL already exists")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrNotOnPage          = errors.New("URL is not on the current page")
)

// Тексты глобальных уведомлений
const (
	MsgEmptyURL      = "Please enter a URL"
	MsgURLExists     = "This URL has already been shortened"
	MsgErrorOccurred = "An error occurred"
)
