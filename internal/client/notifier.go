// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
)

// logNotifier is the default [service.Notifier]: it writes refresh outcomes
// to the application log. UI layers substitute their own implementation.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier backed by the application log.
func NewLogNotifier(log *logger.Logger) *logNotifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) Success(msg string) {
	n.logger.Info().Str("notification", "success").Msg(msg)
}

func (n *logNotifier) Warning(msg string) {
	n.logger.Warn().Str("notification", "warning").Msg(msg)
}

func (n *logNotifier) Error(msg string) {
	n.logger.Error().Str("notification", "error").Msg(msg)
}
