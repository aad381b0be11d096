// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-rest-resource/internal/resource"
	"github.com/spf13/cobra"
)

// flag sets attached to operation commands
const (
	withIDs = 1 << iota
	withBody
)

func bindCallFlags(cmd *cobra.Command, f *callFlags, set int) {
	if set&withIDs != 0 {
		cmd.Flags().StringArrayVar(&f.ids, "id", nil, "Placeholder value name=value (repeatable)")
	}
	if set&withBody != 0 {
		cmd.Flags().StringVarP(&f.data, "data", "d", "", "JSON body, @file or - for stdin")
	}
	cmd.Flags().StringArrayVarP(&f.params, "param", "p", nil, "Query parameter key=value (repeatable, a,b for lists)")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "Suffix appended to the resolved URL")
}

// prepare resolves the shared flags and returns an authenticated client.
func (a *App) prepare(cmd *cobra.Command, f *callFlags) (*resource.Client, resource.IDs, *resource.CallOptions, error) {
	ids, err := parseIDs(f.ids)
	if err != nil {
		return nil, nil, nil, err
	}
	opts, err := f.callOptions()
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := a.client(cmd.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	return client, ids, opts, nil
}

func newQueryCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "GET the collection and print the returned array",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			client, ids, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			items, err := client.Query(ids, opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), items)
		}),
	}
	bindCallFlags(cmd, f, withIDs)
	return cmd
}

func newGetCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "GET a single item",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			client, ids, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			item, err := client.Get(ids, opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), item)
		}),
	}
	bindCallFlags(cmd, f, withIDs)
	return cmd
}

func newSaveCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "save",
		Short: "POST the body and print the created item",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			body, err := f.body(cmd.InOrStdin())
			if err != nil {
				return err
			}
			client, ids, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			item, err := client.Save(body, ids, opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), item)
		}),
	}
	bindCallFlags(cmd, f, withIDs|withBody)
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "PUT the body and print the updated item",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			body, err := f.body(cmd.InOrStdin())
			if err != nil {
				return err
			}
			client, ids, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			item, err := client.Update(body, ids, opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), item)
		}),
	}
	bindCallFlags(cmd, f, withIDs|withBody)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "DELETE an item and print the response",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			client, ids, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			result, err := client.Delete(ids, opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), result)
		}),
	}
	bindCallFlags(cmd, f, withIDs)
	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "GET <collection>/search and print the matches",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			client, _, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			items, err := client.Search(opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), items)
		}),
	}
	bindCallFlags(cmd, f, 0)
	return cmd
}

func newCountCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "count",
		Short: "GET <collection>/count and print the number",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			client, _, opts, err := app.prepare(cmd, f)
			if err != nil {
				return err
			}
			n, err := client.Count(opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), n)
		}),
	}
	bindCallFlags(cmd, f, 0)
	return cmd
}

func newBuildURLCmd(app *App) *cobra.Command {
	f := &callFlags{}
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the URL a call would be sent to, without sending it",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(f.ids)
			if err != nil {
				return err
			}
			opts, err := f.callOptions()
			if err != nil {
				return err
			}
			if app.resource == nil {
				return ErrNotInitialized
			}
			if app.resource.URL() == "" {
				return ErrMissingURL
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.resource.BuildURL(ids, opts))
			return err
		}),
	}
	bindCallFlags(cmd, f, withIDs)
	return cmd
}
