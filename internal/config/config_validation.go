// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateGroup runs the struct tags of one config group and wraps any
// failure with the group sentinel.
func validateGroup(group any, sentinel error) error {
	if err := validate.Struct(group); err != nil {
		return fmt.Errorf("%w: %v", sentinel, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	for name := range cfg.Resource.Headers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty header name", ErrInvalidResourceConfigs)
		}
	}

	if err := validateGroup(cfg.Storage.Token, ErrInvalidStorageConfigs); err != nil {
		return err
	}

	return validateGroup(cfg.Log, ErrInvalidLogConfigs)
}

func (cfg *ServerConfig) validate() error {
	if err := validateGroup(cfg.Server, ErrInvalidServerConfigs); err != nil {
		return err
	}

	return validateGroup(cfg.Log, ErrInvalidLogConfigs)
}
