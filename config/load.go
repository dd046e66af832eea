package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// durations are written either as strings, e.g. "90s", or as integers in nanoseconds
	jsoniter.RegisterTypeDecoderFunc("time.Duration", func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		switch iter.WhatIsNext() {
		case jsoniter.StringValue:
			d, err := time.ParseDuration(iter.ReadString())
			if err != nil {
				iter.ReportError("decode duration", err.Error())
				return
			}

			*(*time.Duration)(ptr) = d
		case jsoniter.NumberValue:
			*(*time.Duration)(ptr) = time.Duration(iter.ReadInt64())
		default:
			iter.ReportError("decode duration", "expected a string or a number")
		}
	})
}

// Load reads the JSON file at path on top of the defaults. Fields missing in the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes the JSON document on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

var (
	ErrNoRoot       = errors.New("root directory doesn't exist")
	ErrRootNotDir   = errors.New("root isn't a directory")
	ErrBadBuffer    = errors.New("buffer sizes must be positive")
	ErrBadTimeout   = errors.New("timeouts must be positive")
	ErrNoAddr       = errors.New("no bind address")
	ErrBadIndexName = errors.New("index file names must be non-empty base names")
)

// Validate checks whether the config can be served.
func Validate(cfg *Config) error {
	info, err := os.Stat(cfg.Root)
	switch {
	case err != nil:
		return fmt.Errorf("%s: %w", cfg.Root, errors.Join(ErrNoRoot, err))
	case !info.IsDir():
		return fmt.Errorf("%s: %w", cfg.Root, ErrRootNotDir)
	}

	if len(cfg.Addr) == 0 {
		return ErrNoAddr
	}

	if cfg.NET.ReadBufferSize <= 0 || cfg.NET.FileBufferSize <= 0 {
		return ErrBadBuffer
	}

	if cfg.NET.ReadTimeout <= 0 || cfg.NET.WriteTimeout <= 0 {
		return ErrBadTimeout
	}

	for _, name := range cfg.IndexFiles {
		if len(name) == 0 || containsSeparator(name) {
			return fmt.Errorf("%q: %w", name, ErrBadIndexName)
		}
	}

	return nil
}

func containsSeparator(name string) bool {
	for i := 0; i < len(name); i++ {
		if os.IsPathSeparator(name[i]) {
			return true
		}
	}

	return false
}
