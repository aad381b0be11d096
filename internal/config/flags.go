// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds command-line values bound to a [pflag.FlagSet]. Flags that were
// not registered or not given stay zero and do not override other sources.
type Flags struct {
	jsonConfigPath string
	logLevel       string
	logFile        string

	// client
	adapterAddress    string
	requestTimeout    time.Duration
	url               string
	auth              bool
	tokenPropertyName string
	headers           map[string]string
	tokenBackend      string
	tokenDSN          string
	tokenFilePath     string
	redisAddress      string
	keyringBackend    string

	// server
	serverAddress        NetAddress
	serverTimeout        time.Duration
	tokenSignKey         string
	tokenIssuer          string
	tokenDuration        time.Duration
	users                map[string]string
	protectedCollections []string
}

// RegisterClientFlags binds the resource client flags to fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	-a/--address base URL of the API
//	--request-timeout request timeout (e.g., "30s", "1m")
//	-u/--url URL template (e.g., "v3/posts/:id")
//	--auth attach the stored access token
//	--token-property token store key
//	-H/--header default header key=value (repeatable)
//	--token-backend token store backend
//	--token-dsn sqlite/postgres DSN
//	--token-file JSON token file path
//	--redis-address redis host:port
//	--keyring-backend auto, file or system
//	--log-level / --log-file logger settings
func RegisterClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.registerCommon(fs)

	fs.StringVarP(&f.adapterAddress, "address", "a", "", "API base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.url, "url", "u", "", "URL template, e.g. v3/posts/:id")
	fs.BoolVar(&f.auth, "auth", false, "Attach the stored access token")
	fs.StringVar(&f.tokenPropertyName, "token-property", "", "Token store key of the access token")
	fs.StringToStringVarP(&f.headers, "header", "H", nil, "Default header key=value")
	fs.StringVar(&f.tokenBackend, "token-backend", "", "Token store backend: memory, file, sqlite, postgres, keyring, redis")
	fs.StringVar(&f.tokenDSN, "token-dsn", "", "Token store DSN (sqlite, postgres)")
	fs.StringVar(&f.tokenFilePath, "token-file", "", "Token store file (file backend)")
	fs.StringVar(&f.redisAddress, "redis-address", "", "Redis address host:port (redis backend)")
	fs.StringVar(&f.keyringBackend, "keyring-backend", "", "Keyring backend: auto, file, system")

	return f
}

// RegisterServerFlags binds the mock backend flags to fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	-a/--address listen address in format [host]:[port]
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--token-sign-key token signing key
//	--token-issuer token issuer name
//	--token-duration token duration (e.g., "1h", "30m")
//	--users login=password pairs (repeatable)
//	--protected collections requiring a token
//	--log-level / --log-file logger settings
func RegisterServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.registerCommon(fs)

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.DurationVar(&f.serverTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&f.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringToStringVar(&f.users, "users", nil, "Accepted credentials login=password")
	fs.StringSliceVar(&f.protectedCollections, "protected", nil, "Collections that require an access token")

	return f
}

func (f *Flags) registerCommon(fs *pflag.FlagSet) {
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    f.adapterAddress,
			RequestTimeout: f.requestTimeout,
		},
		Resource: Resource{
			URL:               f.url,
			Auth:              f.auth,
			TokenPropertyName: f.tokenPropertyName,
			Headers:           f.headers,
		},
		Storage: Storage{
			Token: TokenStorage{
				Backend:        f.tokenBackend,
				DSN:            f.tokenDSN,
				FilePath:       f.tokenFilePath,
				RedisAddress:   f.redisAddress,
				KeyringBackend: f.keyringBackend,
			},
		},
		Server: Server{
			HTTPAddress:          f.serverAddress.String(),
			RequestTimeout:       f.serverTimeout,
			TokenSignKey:         f.tokenSignKey,
			TokenIssuer:          f.tokenIssuer,
			TokenDuration:        f.tokenDuration,
			Users:                f.users,
			ProtectedCollections: f.protectedCollections,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
