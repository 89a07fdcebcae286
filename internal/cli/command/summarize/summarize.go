// Package summarize implementa el comando principal `matepr summarize`.
package summarize

import (
	"context"
	"fmt"
	"os"

	"github.com/mate-labs/matepr/internal/cli/completion_helper"
	"github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/di"
	"github.com/mate-labs/matepr/internal/services"
	"github.com/mate-labs/matepr/internal/ui"
	"github.com/urfave/cli/v3"
)

// SummarizeCommand crea el comando que resume un pull request.
type SummarizeCommand struct {
	container *di.Container
}

// NewSummarizeCommand crea una nueva instancia de SummarizeCommand.
func NewSummarizeCommand(container *di.Container) *SummarizeCommand {
	return &SummarizeCommand{container: container}
}

// CreateCommand construye el comando summarize con sus flags.
func (c *SummarizeCommand) CreateCommand(t *i18n.Translations, appCfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "summarize",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("summarize_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("flag_repo_usage", 0, nil),
				Required: true,
			},
			&cli.IntFlag{
				Name:     "pr-number",
				Aliases:  []string{"n"},
				Usage:    t.GetMessage("flag_pr_number_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("flag_provider_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("flag_output_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("flag_model_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "ollama-url",
				Usage: t.GetMessage("flag_ollama_url_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: t.GetMessage("flag_token_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: t.GetMessage("flag_lang_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return c.run(ctx, cmd, t, appCfg)
		},
	}
}

func (c *SummarizeCommand) run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, appCfg *config.Config) error {
	repo := cmd.String("repo")
	prNumber := cmd.Int("pr-number")

	translations := t
	if lang := cmd.String("lang"); lang != "" {
		appCfg.Language = config.GetLocaleConfig(lang)
		if override, err := i18n.NewTranslations(appCfg.Language, ""); err == nil {
			translations = override
		}
	}

	// Los flags pisan la configuración solo en memoria, nunca se persisten.
	applyOverrides(cmd, appCfg)
	providerName := appCfg.ProviderOrDefault(cmd.String("provider"))
	applyModelOverride(cmd, appCfg, providerName)

	spinner := ui.NewSmartSpinner(translations.GetMessage("spinner_fetching_pr", 0, map[string]interface{}{
		"PRNumber": prNumber,
		"Repo":     repo,
	}))

	progress := func(event models.ProgressEvent) {
		switch event.Stage {
		case models.StageFetchingPR:
			spinner.UpdateMessage(translations.GetMessage("spinner_fetching_pr", 0, map[string]interface{}{
				"PRNumber": event.PRNumber,
				"Repo":     repo,
			}))
		case models.StageGeneratingSummary:
			spinner.Stop()
			ui.ShowChangedFilesTree(event.Files, translations.GetMessage("summary_files_header", len(event.Files), map[string]interface{}{
				"Count": len(event.Files),
			}))
			spinner.UpdateMessage(translations.GetMessage("spinner_generating_summary", 0, map[string]interface{}{
				"Provider": providerName,
			}))
			spinner.Start()
		}
	}

	service, err := c.container.CreateSummaryService(ctx, repo, providerName, services.WithProgress(progress))
	if err != nil {
		ui.HandleAppError(err, translations)
		return err
	}

	spinner.Start()
	summary, err := service.SummarizePR(ctx, prNumber)
	spinner.Stop()

	if err != nil {
		ui.HandleAppError(err, translations)
		return err
	}

	ui.PrintSectionBanner(translations.GetMessage("summary_header", 0, map[string]interface{}{
		"Repo":     repo,
		"PRNumber": prNumber,
	}))
	fmt.Println(summary.Text)
	ui.PrintUsageStats(summary.Usage, translations)

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(summary.Text+"\n"), 0644); err != nil {
			return fmt.Errorf("%s: %w", translations.GetMessage("error.save_summary", 0, map[string]interface{}{
				"Path": outputPath,
			}), err)
		}
		ui.PrintSuccess(os.Stdout, translations.GetMessage("summary_saved", 0, map[string]interface{}{
			"Path": outputPath,
		}))
	}

	return nil
}

func applyOverrides(cmd *cli.Command, appCfg *config.Config) {
	if token := cmd.String("token"); token != "" {
		appCfg.GitHubToken = token
	}
	if url := cmd.String("ollama-url"); url != "" {
		appCfg.Ollama.BaseURL = url
	}
}

func applyModelOverride(cmd *cli.Command, appCfg *config.Config, providerName string) {
	model := cmd.String("model")
	if model == "" {
		return
	}
	if providerName == string(config.ProviderOllama) {
		appCfg.Ollama.Model = model
		return
	}
	if appCfg.AIProviders == nil {
		appCfg.AIProviders = make(map[string]config.AIProviderConfig)
	}
	providerCfg := appCfg.AIProviders[providerName]
	providerCfg.Model = model
	appCfg.AIProviders[providerName] = providerCfg
}
