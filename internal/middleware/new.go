package middleware

import (
	"brme/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
