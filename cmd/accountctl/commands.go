// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/adapter"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/caarlos0/env/v11"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingCommand = errors.New("missing command")
	errMissingID      = errors.New("missing account id")
)

type clientEnv struct {
	URL     string        `env:"URL"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT"`
}

type command func(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error

var commands = map[string]command{
	"version":  versionCmd,
	"register": registerCmd,
	"login":    loginCmd,
	"me":       meCmd,
	"list":     listCmd,
	"get":      getCmd,
	"update":   updateCmd,
	"delete":   deleteCmd,
}

// run parses global flags, builds the adapter and dispatches the command.
func run(ctx context.Context, args []string, out io.Writer) error {
	var defaults clientEnv
	if err := env.ParseWithOptions(&defaults, env.Options{Prefix: "ACCOUNTCTL_"}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	fs := flag.NewFlagSet("accountctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	baseURL := fs.String("url", defaults.URL, "server base URL")
	token := fs.String("token", defaults.Token, "bearer token")
	timeout := fs.Duration("timeout", defaults.Timeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errMissingCommand
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	client, err := adapter.NewHTTPAccountsAdapter(adapter.Config{BaseURL: *baseURL, Timeout: *timeout}, logger.Nop())
	if err != nil {
		return err
	}
	client.SetToken(*token)

	return cmd(ctx, client, fs.Args()[1:], out)
}

func versionCmd(ctx context.Context, client adapter.AccountsAdapter, _ []string, out io.Writer) error {
	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, version)
	return err
}

func registerCmd(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error {
	fs := newFlagSet("register")
	var create models.AccountCreate
	fs.StringVar(&create.Username, "username", "", "username")
	fs.StringVar(&create.Email, "email", "", "email")
	fs.StringVar(&create.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := client.Register(ctx, create)
	if err != nil {
		return err
	}
	return printJSON(out, account)
}

// loginCmd prints the account with its token so it can be reused via -token.
func loginCmd(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error {
	fs := newFlagSet("login")
	var login models.AccountLogin
	fs.StringVar(&login.Email, "email", "", "email")
	fs.StringVar(&login.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := client.Login(ctx, login)
	if err != nil {
		return err
	}
	return printJSON(out, account)
}

func meCmd(ctx context.Context, client adapter.AccountsAdapter, _ []string, out io.Writer) error {
	account, err := client.Me(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, account)
}

func listCmd(ctx context.Context, client adapter.AccountsAdapter, _ []string, out io.Writer) error {
	accounts, err := client.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, accounts)
}

func getCmd(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	account, err := client.Get(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(out, account)
}

// updateCmd sends only the flags given on the command line.
//
//	accountctl update -username bob -active=false 7
func updateCmd(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error {
	fs := newFlagSet("update")
	username := fs.String("username", "", "new username")
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "new password")
	role := fs.String("role", "", "new role (ADMIN or USER)")
	active := fs.Bool("active", true, "account is active")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	var update models.AccountUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			update.Username = models.Some(*username)
		case "email":
			update.Email = models.Some(*email)
		case "password":
			update.Password = models.Some(*password)
		case "role":
			update.Role = models.Some(models.Role(*role))
		case "active":
			update.IsActive = models.Some(*active)
		}
	})

	account, err := client.Update(ctx, id, update)
	if err != nil {
		return err
	}
	return printJSON(out, account)
}

func deleteCmd(ctx context.Context, client adapter.AccountsAdapter, args []string, out io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	msg, err := client.Delete(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, msg)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errMissingID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %w", args[0], err)
	}
	return id, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
