// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rest-resource/internal/store"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/spf13/cobra"
)

const (
	defaultLoginEndpoint = "auth/login"
	memoryBackend        = "memory"
)

func newLoginCmd(app *App) *cobra.Command {
	var (
		credentials models.Credentials
		endpoint    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token and keep it in the token store",
		Long: `Obtain an access token and keep it in the token store.

The credentials are posted to the login endpoint. The returned accessToken is
stored under the configured token property name, where calls made with --auth
pick it up. The password is read from stdin when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			if credentials.Password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return ErrEmptyCredentials
				}
				credentials.Password = strings.TrimRight(line, "\r\n")
			}
			if credentials.Login == "" || credentials.Password == "" {
				return ErrEmptyCredentials
			}

			token, err := app.loginRequest(cmd.Context(), endpoint, credentials)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			key := app.cfg.Resource.TokenPropertyName
			if err = app.tokens.SetToken(cmd.Context(), key, token); err != nil {
				return fmt.Errorf("store access token: %w", err)
			}

			app.logger.Info().Str("login", credentials.Login).Str("key", key).Msg("access token stored")
			if app.cfg.Storage.Token.Backend == memoryBackend {
				app.logger.Warn().Msg("token store is in memory, the token is dropped on exit")
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: the memory token store keeps the token only until this command exits; use --token-backend file")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", credentials.Login)
			return err
		}),
	}

	cmd.Flags().StringVarP(&credentials.Login, "login", "l", "", "Login")
	cmd.Flags().StringVarP(&credentials.Password, "password", "P", "", "Password (read from stdin when empty)")
	cmd.Flags().StringVar(&endpoint, "endpoint", defaultLoginEndpoint, "Login endpoint relative to --address")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			key := app.cfg.Resource.TokenPropertyName
			err := app.tokens.DeleteToken(cmd.Context(), key)
			if err != nil && !errors.Is(err, store.ErrTokenNotFound) {
				return fmt.Errorf("delete access token: %w", err)
			}

			app.logger.Info().Str("key", key).Msg("access token removed")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return err
		}),
	}
}
