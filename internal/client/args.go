// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-rest-resource/internal/resource"
)

// callFlags are the per-command flags shared by the resource operations.
type callFlags struct {
	ids    []string
	params []string
	suffix string
	data   string
}

// splitPair splits "name=value". The name must not be empty.
func splitPair(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPair, raw)
	}
	return name, value, nil
}

// parseIDs builds placeholder values from repeated --id name=value flags.
func parseIDs(raw []string) (resource.IDs, error) {
	ids := make(resource.IDs, len(raw))
	for _, pair := range raw {
		name, value, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		ids[name] = value
	}
	return ids, nil
}

// parseParams builds query parameters from repeated --param key=value flags.
// A value containing commas or a key given more than once becomes a sequence.
func parseParams(raw []string) (*resource.Params, error) {
	params := resource.NewParams()
	for _, pair := range raw {
		key, value, err := splitPair(pair)
		if err != nil {
			return nil, err
		}

		var items []any
		if existing, ok := params.Get(key); ok {
			switch v := existing.(type) {
			case []any:
				items = v
			default:
				items = []any{v}
			}
		}

		if strings.Contains(value, ",") {
			for _, item := range strings.Split(value, ",") {
				items = append(items, item)
			}
		} else if items != nil {
			items = append(items, value)
		}

		if items != nil {
			params.Set(key, items)
			continue
		}
		params.Set(key, value)
	}
	return params, nil
}

// callOptions turns the shared flags into resource call options.
func (f *callFlags) callOptions() (*resource.CallOptions, error) {
	opts := resource.NewCallOptions()
	if f.suffix != "" {
		opts.WithSuffix(f.suffix)
	}
	if len(f.params) > 0 {
		params, err := parseParams(f.params)
		if err != nil {
			return nil, err
		}
		opts.WithParams(params)
	}
	return opts, nil
}

// body decodes --data. "@path" reads a file and "-" reads stdin.
func (f *callFlags) body(stdin io.Reader) (any, error) {
	raw, err := readData(f.data, stdin)
	if err != nil {
		return nil, err
	}

	var body any
	if err = json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return body, nil
}

func readData(data string, stdin io.Reader) ([]byte, error) {
	switch {
	case data == "":
		return nil, ErrMissingData
	case data == "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	case strings.HasPrefix(data, "@"):
		raw, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		return raw, nil
	default:
		return []byte(data), nil
	}
}
