/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package log configures the process-wide apex/log logger. The log level
// comes from the STACKCAT_LOG environment variable and defaults to ERROR
// so that command output stays clean unless asked for.
package log

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex/log with the stackcat handler and a log level from the
// STACKCAT_LOG env variable.
func Init() {
	level := strings.ToUpper(os.Getenv("STACKCAT_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&Handler{})
	log.SetLevelFromString(level)
}

// Handler formats log entries and writes them to stderr, keeping stdout
// free for command output.
type Handler struct{}

// HandleLog implements the log.Handler interface
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var fields []string
	for name, value := range e.Fields {
		fields = append(fields, fmt.Sprintf("%s=%v", name, value))
	}
	sort.Strings(fields)

	if len(fields) > 0 {
		fmt.Fprintf(os.Stderr, "%s %.1s %s %s\n", timestamp, level, e.Message, strings.Join(fields, " "))
	} else {
		fmt.Fprintf(os.Stderr, "%s %.1s %s\n", timestamp, level, e.Message)
	}
	return nil
}
