package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mate-labs/matepr/internal/cli/command/completion"
	"github.com/mate-labs/matepr/internal/cli/command/config"
	"github.com/mate-labs/matepr/internal/cli/command/serve"
	"github.com/mate-labs/matepr/internal/cli/command/summarize"
	"github.com/mate-labs/matepr/internal/cli/registry"
	cfg "github.com/mate-labs/matepr/internal/config"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/basic"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/gemini"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/ollama"
	"github.com/mate-labs/matepr/internal/infrastructure/ai/openai"
	"github.com/mate-labs/matepr/internal/infrastructure/di"
	"github.com/mate-labs/matepr/internal/logger"
	"github.com/mate-labs/matepr/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(hasFlag(os.Args, "--debug"), hasFlag(os.Args, "--verbose"))

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// hasFlag busca el flag a mano porque el logger tiene que estar listo antes
// de que urfave parsee nada.
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, err
	}

	// Las variables de entorno pisan la config en memoria después de
	// persistirla, así los secretos nunca terminan en el archivo.
	cfg.ApplyEnv(cfgApp)

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider(basic.NewFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor basic: %v", err)
	}

	if err := container.RegisterAIProvider(openai.NewFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}

	if err := container.RegisterAIProvider(gemini.NewFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	if err := container.RegisterAIProvider(ollama.NewFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Ollama: %v", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("summarize", summarize.NewSummarizeCommand(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'summarize': %v", err)
	}

	if err := registerCommand.Register("serve", serve.NewServeCommand(container, version.Version)); err != nil {
		log.Fatalf("Error al registrar el comando 'serve': %v", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "matepr",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose_usage", 0, nil),
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
