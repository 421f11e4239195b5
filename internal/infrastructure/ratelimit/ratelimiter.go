// Package ratelimit limits how often a caller may hit a route.
package ratelimit

import "context"

// RateLimiter admits or rejects one request for key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Nop admits every request. It is used when redis is disabled.
type Nop struct{}

func (Nop) Allow(ctx context.Context, key string) (bool, error) { return true, nil }
