// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// gooseLogger routes goose progress lines into the structured log.
type gooseLogger struct {
	log *logger.Logger
}

var _ goose.Logger = gooseLogger{}

func newGooseLogger(log *logger.Logger) gooseLogger {
	if log == nil {
		log = logger.Nop()
	}
	return gooseLogger{log: log}
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
