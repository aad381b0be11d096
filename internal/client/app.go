// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-rest-resource/internal/adapter"
	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/resource"
	"github.com/MKhiriev/go-rest-resource/internal/store"
	"github.com/MKhiriev/go-rest-resource/models"
)

const loggerRole = "resource-cli"

// App holds the dependencies of one CLI invocation. They are built by open
// once flags are parsed and released by close.
type App struct {
	flags *config.Flags
	jq    string

	newTransport  TransportFactory
	newTokenStore TokenStoreFactory

	cfg       *config.ClientConfig
	logger    *logger.Logger
	transport adapter.Transport
	tokens    store.TokenStore
	resource  *resource.Client
}

// NewApp returns an App using the resty transport and the configured token
// store backend.
func NewApp() *App {
	return &App{
		newTransport:  adapter.NewHTTPTransport,
		newTokenStore: store.NewTokenStore,
	}
}

// open loads the configuration and builds the logger, transport, token store
// and resource client.
func (a *App) open(ctx context.Context) error {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, cfg.Log.Level, cfg.Log.File)

	transport, err := a.newTransport(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	tokens, err := a.newTokenStore(ctx, cfg.Storage.Token, log)
	if err != nil {
		return fmt.Errorf("create token store: %w", err)
	}

	client := resource.NewClient(transport, tokens, resourceConfig(cfg.Resource), log)
	client.SetURL(cfg.Resource.URL)

	a.cfg = cfg
	a.logger = log
	a.transport = transport
	a.tokens = tokens
	a.resource = client

	log.Debug().
		Str("address", cfg.Adapter.HTTPAddress).
		Str("url", cfg.Resource.URL).
		Str("token_backend", cfg.Storage.Token.Backend).
		Msg("client app opened")

	return nil
}

func (a *App) close() error {
	if a.tokens == nil {
		return nil
	}
	err := a.tokens.Close()
	a.tokens = nil
	return err
}

// resourceConfig starts from the JSON defaults and layers the configured
// headers and auth settings on top.
func resourceConfig(cfg config.ClientResource) resource.Config {
	rc := resource.DefaultConfig()
	for k, v := range cfg.Headers {
		rc.RequestOptions.Headers.Set(k, v)
	}
	rc.Auth = cfg.Auth
	rc.TokenPropertyName = cfg.TokenPropertyName
	return rc
}

// client returns the resource client after attaching the stored token when
// authentication is enabled.
func (a *App) client(ctx context.Context) (*resource.Client, error) {
	if a.resource == nil {
		return nil, ErrNotInitialized
	}
	if a.resource.URL() == "" {
		return nil, ErrMissingURL
	}
	if err := a.resource.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return a.resource, nil
}

// print writes v as indented JSON after applying the jq filter.
func (a *App) print(w io.Writer, v any) error {
	return writeJSON(w, v, a.jq)
}

// loginRequest posts credentials to endpoint and returns the issued token.
func (a *App) loginRequest(ctx context.Context, endpoint string, credentials models.Credentials) (string, error) {
	if a.transport == nil {
		return "", ErrNotInitialized
	}

	login := resource.NewClient(a.transport, nil, resource.DefaultConfig(), a.logger)
	login.SetURL(endpoint)

	resp, err := resource.SaveAs[models.AccessTokenResponse](login, credentials, nil, nil).Await(ctx)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}
