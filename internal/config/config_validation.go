// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

const minRSABits = 2048

func (cfg *ClientConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefetchInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	if cfg.Session.ExpiryCheckInterval <= 0 {
		errs = append(errs, ErrInvalidSessionConfigs)
	}

	if cfg.App.RSABits < minRSABits || cfg.App.KDFTime == 0 || cfg.App.KDFMemory == 0 || cfg.App.KDFThreads == 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	return errors.Join(errs...)
}
