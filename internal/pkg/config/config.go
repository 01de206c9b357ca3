package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of various types.
// Implementations should return the zero value when a key is missing or cannot be converted.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with the given key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with the given key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value associated with the given key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the value associated with the given key as a string.
	GetString(key string) string

	// GetSecond retrieves the value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the value associated with the given key as a slice of strings.
	// Values are stored either as a list or with format <element1>,<element2>,...
	GetArray(key string) []string
}
