// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the cryptographic parameters of the client.
type ClientApp struct {
	KDFTime    uint32
	KDFMemory  uint32
	KDFThreads uint8
	RSABits    int
}

// ClientAdapter holds network settings used by the REST adapter.
type ClientAdapter struct {
	// HTTPAddress is the backend address, "host:port" or a full URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the sqlite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSession holds session lifecycle settings.
type ClientSession struct {
	ExpiryCheckInterval time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	RefetchInterval time.Duration
}

// ClientLog holds logger settings.
type ClientLog struct {
	Dir   string
	Level string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Session ClientSession
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and returns the validated client view of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			KDFTime:    cfg.App.KDFTime,
			KDFMemory:  cfg.App.KDFMemory,
			KDFThreads: cfg.App.KDFThreads,
			RSABits:    cfg.App.RSABits,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Session: ClientSession{ExpiryCheckInterval: cfg.Session.ExpiryCheckInterval},
		Workers: ClientWorkers{RefetchInterval: cfg.Workers.RefetchInterval},
		Log:     ClientLog{Dir: cfg.Log.Dir, Level: cfg.Log.Level},
	}
}
