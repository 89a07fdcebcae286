package config

import (
	"context"
	"fmt"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-model",
		Usage: t.GetMessage("config_set_model_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    t.GetMessage("config_set_model_flag_provider_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    t.GetMessage("config_set_model_flag_model_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			model := command.String("model")

			if !config.IsSupportedProvider(provider) {
				msg := t.GetMessage("unsupported_provider", 0, map[string]interface{}{
					"Provider":  provider,
					"Providers": supportedProviderList(),
				})
				return fmt.Errorf("%s", msg)
			}

			if provider == string(config.ProviderOllama) {
				cfg.Ollama.Model = model
			} else {
				if cfg.AIProviders == nil {
					cfg.AIProviders = make(map[string]config.AIProviderConfig)
				}
				providerCfg := cfg.AIProviders[provider]
				providerCfg.Model = model
				cfg.AIProviders[provider] = providerCfg
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("model_configured", 0, map[string]interface{}{
				"Provider": provider,
				"Model":    model,
			}))
			return nil
		},
	}
}
