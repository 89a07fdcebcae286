package config

import (
	"context"
	"fmt"

	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			ui.PrintKeyValue(t.GetMessage("config_label_language", 0, nil), cfg.Language)
			ui.PrintKeyValue(t.GetMessage("config_label_provider", 0, nil), cfg.DefaultProvider)
			ui.PrintKeyValue(t.GetMessage("config_label_token", 0, nil), secretStatus(t, cfg.GitHubToken != ""))

			// Los secretos nunca se imprimen, solo si están configurados o no
			for _, provider := range []config.Provider{config.ProviderOpenAI, config.ProviderGemini} {
				label := t.GetMessage("config_label_api_key", 0, map[string]interface{}{
					"Provider": string(provider),
				})
				ui.PrintKeyValue(label, secretStatus(t, cfg.APIKeyFor(string(provider)) != ""))

				modelLabel := t.GetMessage("config_label_model", 0, map[string]interface{}{
					"Provider": string(provider),
				})
				ui.PrintKeyValue(modelLabel, cfg.ModelFor(string(provider)))
			}

			ui.PrintKeyValue(t.GetMessage("config_label_ollama_url", 0, nil), cfg.Ollama.BaseURL)
			ui.PrintKeyValue(t.GetMessage("config_label_ollama_model", 0, nil), cfg.Ollama.Model)

			return nil
		},
	}
}

func secretStatus(t *i18n.Translations, isSet bool) string {
	if isSet {
		return t.GetMessage("config_value_set", 0, nil)
	}
	return t.GetMessage("config_value_not_set", 0, nil)
}
