package config

import (
	"time"
)

type (
	Headers struct {
		// Default headers are included into every response implicitly, unless explicitly
		// set by the handler.
		Default map[string]string
	}

	NET struct {
		// ReadBufferSize is the size of a single read from the socket. The request buffer
		// grows by this step until the header terminator arrives.
		ReadBufferSize int
		// ReadTimeout bounds every single read from the socket. A client that doesn't send
		// anything within this period is disconnected.
		ReadTimeout time.Duration
		// WriteTimeout bounds writing the whole response, including the body.
		WriteTimeout time.Duration
		// FileBufferSize is the size of the intermediate buffer used to stream the body
		// into the socket.
		FileBufferSize int
		// ReusePort enables SO_REUSEPORT on the listener, where supported.
		ReusePort bool `test:"nullable"`
		// MaxRequestSize limits the size of the request including its body. 0 disables
		// the limit.
		MaxRequestSize int `test:"nullable"`
	}

	Log struct {
		// Level is one of zerolog's level names: trace, debug, info, warn, error, disabled.
		Level string
		// Console enables the human-readable output instead of JSON.
		Console bool `test:"nullable"`
	}
)

// Config is shared read-only across all the connections.
//
// Always start from Default() and modify the result, as most zero values aren't meaningful.
type Config struct {
	// Root is the directory the files are served from.
	Root string
	// IndexFiles are tried in order when a directory is requested.
	IndexFiles []string
	// Addr is the TCP address to bind to.
	Addr    string
	Headers Headers
	NET     NET
	Log     Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Root:       ".",
		IndexFiles: []string{"index.html"},
		Addr:       "0.0.0.0:8080",
		Headers: Headers{
			Default: map[string]string{
				"server": "fileserve",
			},
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
			WriteTimeout:   5 * time.Minute,
			FileBufferSize: 32 * 1024,
			ReusePort:      false,
			MaxRequestSize: 1024 * 1024,
		},
		Log: Log{
			Level:   "info",
			Console: true,
		},
	}
}
