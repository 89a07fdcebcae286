package config

import (
	"context"
	"fmt"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetOllamaURLCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-ollama-url",
		Usage: t.GetMessage("config_set_ollama_url_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    t.GetMessage("config_set_ollama_url_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			url := command.String("url")

			cfg.Ollama.BaseURL = url
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("ollama_url_configured", 0, map[string]interface{}{"URL": url}))
			return nil
		},
	}
}
