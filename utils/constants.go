package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// OTPTTL is how long a one-time passcode stays valid.
const OTPTTL = 5 * time.Minute

// ProfileCachePrefix is the prefix for cached service profiles.
const ProfileCachePrefix = "serviceprofile:"

// ProfileCacheTTL is the time-to-live for cached service profiles.
const ProfileCacheTTL = 15 * time.Minute
