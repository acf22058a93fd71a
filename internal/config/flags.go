// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token session token used by the agent
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-token-subject subject of issued tokens
//	-token-sync-approved mark issued tokens as approved for syncing
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server-url base URL of the remote service used by the agent
//	-adapter-timeout agent request timeout
//	-cursor-file path of the JSON pull cursor file
//	-log-file path of the rotated log file
//	-frequent-interval interval of the frequent sync tier
//	-daily-interval interval of the daily sync tier
//	-frequent-batch-size pull page size of the frequent tier
//	-daily-batch-size pull page size of the daily tier
//	-once run one sync of every entity and exit
//	-entity run one entity and exit
//	-op operation of -entity: sync, push or pull
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessToken string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var tokenSubject string
	var tokenSyncApproved bool
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var cursorFile string
	var logFile string
	var frequentInterval, dailyInterval time.Duration
	var frequentBatchSize, dailyBatchSize int
	var once bool
	var entity, operation string

	fs := flag.NewFlagSet("go-record-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessToken, "access-token", "", "Session token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&tokenSubject, "token-subject", "", "Subject of issued tokens")
	fs.BoolVar(&tokenSyncApproved, "token-sync-approved", false, "Issue tokens approved for syncing")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server-url", "", "Remote service base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Remote call timeout (e.g., 30s)")
	fs.StringVar(&cursorFile, "cursor-file", "", "Pull cursor file path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&frequentInterval, "frequent-interval", 0, "Frequent sync interval")
	fs.DurationVar(&dailyInterval, "daily-interval", 0, "Daily sync interval")
	fs.IntVar(&frequentBatchSize, "frequent-batch-size", 0, "Frequent pull page size")
	fs.IntVar(&dailyBatchSize, "daily-batch-size", 0, "Daily pull page size")
	fs.BoolVar(&once, "once", false, "Sync every entity once and exit")
	fs.StringVar(&entity, "entity", "", "Sync one entity and exit")
	fs.StringVar(&operation, "op", "", "Operation of -entity: sync, push or pull")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessToken:   accessToken,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,

			TokenSubject:      tokenSubject,
			TokenSyncApproved: tokenSyncApproved,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			CursorFile: cursorFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			FrequentInterval: frequentInterval,
			DailyInterval:    dailyInterval,
		},
		Sync: Sync{
			FrequentBatchSize: frequentBatchSize,
			DailyBatchSize:    dailyBatchSize,
		},
		Log: Log{File: logFile},
		Run: Run{
			Once:      once,
			Entity:    entity,
			Operation: operation,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or a literal IPv4/IPv6 address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
