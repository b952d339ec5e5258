// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command accountctl is a small admin client of the accounts REST API.
//
// Usage:
//
//	accountctl [-url URL] [-token TOKEN] [-timeout 15s] <command> [flags] [id]
//
// Commands: version, register, login, me, list, get, update, delete.
// The base URL and token may also come from ACCOUNTCTL_URL and
// ACCOUNTCTL_TOKEN.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "accountctl:", err)
		os.Exit(1)
	}
}
