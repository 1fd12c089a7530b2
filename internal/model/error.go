package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")                  // 400
	ErrInvalidArgument = errors.New("invalid argument")                  // 400
	ErrDuplicatePartID = errors.New("a part with this ID already exists") // 400
	ErrNegativeStock   = errors.New("stock cannot be negative")          // 400
	ErrPartNotFound    = errors.New("part not found")                    // 404
)
