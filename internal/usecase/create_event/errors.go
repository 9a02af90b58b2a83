package create_event

import "errors"

var (
	// ErrPastTime возвращается, когда время начала строго раньше текущего момента
	ErrPastTime = errors.New("create_event: start time is in the past")

	// ErrOutsideHours возвращается, когда время начала вне рабочего окна дня
	ErrOutsideHours = errors.New("create_event: start time is outside working hours")

	// ErrConflict возвращается, когда время пересекается с существующим событием
	ErrConflict = errors.New("create_event: time conflicts with an existing event")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)
