package config

import "time"

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	DefaultTxTimeout    = 45 * time.Second
	SearchTimeout       = 10 * time.Second
	NetworkDialTimeout  = 5 * time.Second
	ShutdownTimeout     = 15 * time.Second
	StartupTimeout      = 30 * time.Second

	// Cache settings
	KeyCacheSize       = 64
	KeyFetchTimeout    = 10 * time.Second
	KeyRefreshInterval = time.Hour
	// unknown kids trigger at most one refetch per interval
	KeyUnknownRefresh = 5 * time.Minute

	MaxRetries = 3
)

// File and Storage Constants
const (
	MaxImageSize = 10 * 1024 * 1024 // 10MB

	CardImageFolder = "card-images"
	DeckImageFolder = "deck-images"
	ImageExtension  = ".jpg"
	ImageMimeType   = "image/jpeg"
)

// API and Rate Limiting Constants
const (
	GlobalRateLimit = 120
	AuthRateLimit   = 20
	RateLimitWindow = 1 * time.Minute

	MaxRequestSize = 12 * 1024 * 1024
)

// Search and Filter Constants
const (
	MaxSearchResults = 50
)

// User defaults applied when the identity claim lacks a field
const (
	MaxUsernameLength = 64
	DefaultUsername   = "Unknown"
	DefaultEmail      = "no-email@example.com"
)
