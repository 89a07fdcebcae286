// Package config implementa el comando `matepr config` y sus subcomandos.
// Cada setter valida, persiste con config.SaveConfig y recién ahí confirma.
package config

import (
	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetProviderCommand(t, cfg),
			c.newSetModelCommand(t, cfg),
			c.newSetOllamaURLCommand(t, cfg),
			c.newSetTokenCommand(t, cfg),
		},
	}
}
