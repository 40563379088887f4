// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"strings"
)

// Display levels understood by the local trace.
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarn    = "WARN"
	LevelError   = "ERROR"
	LevelFatal   = "FATAL"
	LevelSuccess = "SUCCESS"
)

// Stacks accepted by the remote logging API.
const (
	StackBackend  = "backend"
	StackFrontend = "frontend"
)

const (
	defaultLevel = LevelInfo
	defaultStack = StackFrontend
)

var (
	allowedStacks = map[string]struct{}{
		StackBackend:  {},
		StackFrontend: {},
	}
	allowedLevels = map[string]struct{}{
		"debug": {},
		"info":  {},
		"warn":  {},
		"error": {},
		"fatal": {},
	}

	// DisplayLevels lists the levels callers are expected to use.
	DisplayLevels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelSuccess}
)

// normalizeLevel uppercases level, using INFO when it is empty. A blank level
// is not empty and is left to fail validation.
func normalizeLevel(level string) string {
	if level == "" {
		return defaultLevel
	}
	return strings.ToUpper(level)
}

// apiStack lowercases stack, using frontend when it is empty.
func apiStack(stack string) string {
	if stack == "" {
		return defaultStack
	}
	return strings.ToLower(stack)
}

// apiLevel lowercases an already normalized level; SUCCESS has no remote
// equivalent and is sent as info.
func apiLevel(normalizedLevel string) string {
	level := strings.ToLower(normalizedLevel)
	if level == "success" {
		return "info"
	}
	return level
}
