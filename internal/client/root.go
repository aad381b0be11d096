// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the "resource" command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newRootCommand(NewApp(), info)
}

func newRootCommand(app *App, info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "resource",
		Short: "Call a REST resource described by a URL template",
		Long: `Call a REST resource described by a URL template such as "v3/posts/:id".

Placeholders are filled from --id flags; missing ones are dropped together
with the slash in front of them. Query parameters come from --param flags.`,
		Example: `  resource --address http://localhost:8080 --url posts/:id query --param limit=10
  resource --url posts/:id get --id id=123 --suffix /mock
  resource --url posts save --data '{"text":"abcdef"}'
  resource --url posts search --param keywords=android,iOS --jq '.[].title'
  resource login --login alice --password secret`,
		Version:       versionString(info),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd.Context())
		},
	}

	app.flags = config.RegisterClientFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&app.jq, "jq", "", "Filter the JSON output with a jq expression")

	root.AddCommand(
		newQueryCmd(app),
		newGetCmd(app),
		newSaveCmd(app),
		newUpdateCmd(app),
		newDeleteCmd(app),
		newSearchCmd(app),
		newCountCmd(app),
		newBuildURLCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
	)

	return root
}

// runE releases the App once the command finishes, whatever its outcome.
func runE(app *App, fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if closeErr := app.close(); err == nil && closeErr != nil {
				err = fmt.Errorf("close token store: %w", closeErr)
			}
		}()
		return fn(cmd, args)
	}
}

func versionString(info models.AppBuildInfo) string {
	version, date, commit := info.BuildVersion(), info.BuildDate(), info.BuildCommit()
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return fmt.Sprintf("%s (date: %s, commit: %s)", version, date, commit)
}
