// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command tokengen issues a session token for the sync agent and prints it
// to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

func main() {
	cfg, err := config.GetTokenConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	token, err := utils.GenerateJWTToken(cfg.Issuer, cfg.Subject, cfg.SyncApproved, cfg.Duration, cfg.SignKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token.SignedString)
}
