// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-rest-resource/internal/adapter"
	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/store"
)

// TransportFactory builds the outbound transport from the adapter settings.
type TransportFactory func(cfg config.ClientAdapter, log *logger.Logger) (adapter.Transport, error)

// TokenStoreFactory opens the token store selected by the storage settings.
type TokenStoreFactory func(ctx context.Context, cfg config.TokenStorage, log *logger.Logger) (store.TokenStore, error)
