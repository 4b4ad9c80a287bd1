package ir

import "errors"

var (
	ErrParse     = errors.New("parse error")
	ErrNotFound  = errors.New("not found")
	ErrType      = errors.New("type mismatch")
	ErrIndex     = errors.New("bad index")
	ErrOperator  = errors.New("bad operator")
	ErrEmptyPath = errors.New("empty path")
)
