package middleware

import (
	"context"

	"day-planner/pkg/clerk"
	"day-planner/pkg/log"
)

// TokenVerifier resolves a session token to a Clerk session.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (clerk.Session, error)
}

type Middleware struct {
	l        log.Logger
	verifier TokenVerifier
}

func New(l log.Logger, verifier TokenVerifier) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
	}
}
