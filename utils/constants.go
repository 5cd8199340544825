// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AssistantSessionPrefix is the prefix for cached assistant conversations.
const AssistantSessionPrefix = "assistant:"

// AssistantSessionTTL is how long an idle assistant conversation survives.
const AssistantSessionTTL = 30 * time.Minute
