// Package serve implementa el comando `matepr serve`, que levanta el
// front-end web sobre el mismo contenedor que usa la CLI.
package serve

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/di"
	"github.com/mate-labs/matepr/internal/ui"
	"github.com/mate-labs/matepr/internal/web"
	"github.com/urfave/cli/v3"
)

const defaultPort = 5002

// ServeCommand crea el comando que sirve el front-end web.
type ServeCommand struct {
	container *di.Container
	version   string
}

// NewServeCommand crea una nueva instancia de ServeCommand.
func NewServeCommand(container *di.Container, version string) *ServeCommand {
	return &ServeCommand{container: container, version: version}
}

// CreateCommand construye el comando serve.
func (c *ServeCommand) CreateCommand(t *i18n.Translations, appCfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: t.GetMessage("serve_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("serve_flag_port_usage", 0, nil),
				Value:   defaultPort,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			port := cmd.Int("port")

			runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := web.NewServer(c.container, t, port, c.version)

			ui.PrintInfo(t.GetMessage("serve_listening", 0, map[string]interface{}{
				"Port": port,
			}))

			if err := server.Run(runCtx); err != nil {
				return err
			}

			ui.PrintInfo(t.GetMessage("serve_shutting_down", 0, nil))
			return nil
		},
	}
}
