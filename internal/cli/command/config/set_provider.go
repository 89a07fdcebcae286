package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetProviderCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-provider",
		Usage: t.GetMessage("config_set_provider_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    t.GetMessage("config_set_provider_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			if !config.IsSupportedProvider(provider) {
				msg := t.GetMessage("unsupported_provider", 0, map[string]interface{}{
					"Provider":  provider,
					"Providers": supportedProviderList(),
				})
				return fmt.Errorf("%s", msg)
			}

			cfg.DefaultProvider = provider
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("provider_configured", 0, map[string]interface{}{"Provider": provider}))
			return nil
		},
	}
}

func supportedProviderList() string {
	names := make([]string, 0, len(config.SupportedProviders()))
	for _, p := range config.SupportedProviders() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
