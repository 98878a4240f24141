/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/stackcat/stackcat/cmd"
	"github.com/stackcat/stackcat/internal/log"
	"github.com/stackcat/stackcat/internal/version"
)

func main() {
	log.Init()

	if err := fang.Execute(
		context.Background(),
		cmd.Root(),
		fang.WithVersion(version.Short()),
	); err != nil {
		os.Exit(1)
	}
}
