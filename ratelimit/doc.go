// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ratelimit throttles submit attempts per client.

Both limiters use a fixed window: the first attempt for a key opens a window
of the configured length, and at most max attempts are allowed until it ends.

	limiter := ratelimit.NewMemoryLimiter(6, time.Minute)
	ok, err := limiter.Allow(ctx, auth.HashIP(ip, salt))

# Backends

MemoryLimiter is the default and suits a single instance. RedisLimiter keeps
the counters in Redis (INCR plus EXPIRE) so several instances share them:

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
	limiter := ratelimit.NewRedisLimiter(client, cfg.RateLimitMax, cfg.RateLimitWindow)

# Failure Handling

Allow returns an error when the backend is unreachable. Callers let the
request through and log the error, so an outage of Redis never blocks
submissions.
*/
package ratelimit
