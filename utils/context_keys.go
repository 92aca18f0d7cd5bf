package utils

type ContextKey int

const (
	ContextKeySession ContextKey = iota
	ContextKeyLogger
)
