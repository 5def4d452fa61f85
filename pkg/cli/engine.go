package cli

import (
	"github.com/convox/logarchive/pkg/config"
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/stdcli"
)

type Engine struct {
	*stdcli.Engine
	Store storage.Store
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		s, err := e.currentStore(c)
		if err != nil {
			return err
		}

		return fn(s, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) CommandWithoutStore(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(nil, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		if c.Store {
			e.Command(c.Command, c.Description, c.Handler, c.Opts)
		} else {
			e.CommandWithoutStore(c.Command, c.Description, c.Handler, c.Opts)
		}
	}
}

func (e *Engine) currentStore(c *stdcli.Context) (storage.Store, error) {
	if e.Store != nil {
		return e.Store, nil
	}

	if dir := c.String("dir"); dir != "" {
		return storage.NewLocal(dir), nil
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	client, err := storage.S3Client(cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	return storage.NewS3(client), nil
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
	Store       bool
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Store:       true,
	})
}

func registerWithoutStore(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Store:       false,
	})
}
