// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
)

type Services struct {
	AuthService       AuthService
	CollectionService CollectionService
}

func NewServices(cfg config.Server, logger *logger.Logger) (*Services, error) {
	auth, err := NewAuthService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	return &Services{
		AuthService:       auth,
		CollectionService: NewCollectionService(cfg.ProtectedCollections, utils.NewUUIDGenerator(), logger),
	}, nil
}
