package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jrsteele09/codelearn-landing/auth"
	"github.com/jrsteele09/codelearn-landing/internal/config"
	"github.com/jrsteele09/codelearn-landing/internal/logger"
	"github.com/jrsteele09/codelearn-landing/server"
	"github.com/jrsteele09/codelearn-landing/sessions"
	"github.com/jrsteele09/codelearn-landing/sessions/tabstore"
)

// LoginURLCmd prints the authorize URL a visitor would be sent to. Useful to
// check the provider client configuration without a browser.
type LoginURLCmd struct {
	ShowState bool `help:"Also print the generated CSRF state." name:"show-state"`
}

var stdout io.Writer = os.Stdout

func (c *LoginURLCmd) Run(globals *Globals) error {
	logger.Setup(globals.Debug)

	cfg, err := config.New()
	if err != nil {
		return err
	}

	out := stdout
	storage := tabstore.New(cfg.GetTabQuotaBytes()).Tab(uuid.New().String())
	printer := auth.NavigatorFunc(func(target string) error {
		_, err := fmt.Fprintln(out, target)
		return err
	})

	session, err := auth.NewSessionService(server.AuthConfig(cfg), storage, printer)
	if err != nil {
		return err
	}
	if err := session.BeginLogin(); err != nil {
		return err
	}

	if c.ShowState {
		state, _, err := storage.Get(sessions.StateKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "state: %s\n", state)
	}
	return nil
}
