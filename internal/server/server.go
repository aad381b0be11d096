// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/handler"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer

	// listen opens the listening socket; replaced in tests.
	listen func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	// stop serving on cancellation or when Serve fails
	g.Go(func() error {
		<-gCtx.Done()
		return s.httpServer.shutdown()
	})

	if err = g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
