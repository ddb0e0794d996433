// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the vault
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key-derivation and key-pair settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds session lifecycle settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the cryptographic parameters of the client.
type App struct {
	// KDFTime is the Argon2id iteration count.
	// Env: APP_KDF_TIME
	KDFTime uint32 `env:"KDF_TIME"`

	// KDFMemory is the Argon2id memory cost in KiB.
	// Env: APP_KDF_MEMORY
	KDFMemory uint32 `env:"KDF_MEMORY"`

	// KDFThreads is the Argon2id parallelism.
	// Env: APP_KDF_THREADS
	KDFThreads uint8 `env:"KDF_THREADS"`

	// RSABits is the modulus size of newly generated sharing key pairs.
	// Env: APP_RSA_BITS
	RSABits int `env:"RSA_BITS"`
}

// Adapter holds the settings of the REST client.
type Adapter struct {
	// HTTPAddress is the backend base address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite data source name (e.g. "file:vault.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds session lifecycle settings.
type Session struct {
	// ExpiryCheckInterval is how often the expiry watcher looks at the
	// session clock.
	// Env: SESSION_EXPIRY_CHECK_INTERVAL
	ExpiryCheckInterval time.Duration `env:"EXPIRY_CHECK_INTERVAL"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefetchInterval is how often invalidated, still-observed queries are
	// refetched in the background.
	// Env: WORKERS_REFETCH_INTERVAL
	RefetchInterval time.Duration `env:"REFETCH_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Dir is the directory the client log file is written to. Empty means
	// next to the executable.
	// Env: LOG_DIR
	Dir string `env:"DIR"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults is the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFTime:    1,
			KDFMemory:  64 * 1024,
			KDFThreads: 4,
			RSABits:    3072,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "file:vault.db?_foreign_keys=on"},
		},
		Session: Session{ExpiryCheckInterval: 10 * time.Second},
		Workers: Workers{RefetchInterval: 5 * time.Second},
		Log:     Log{Level: "debug"},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
