package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear una configuración por defecto si no existe", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatalf("no se esperaba error: %v", err)
		}

		if cfg.Language != LangEN {
			t.Errorf("idioma por defecto incorrecto: %s", cfg.Language)
		}
		if cfg.DefaultProvider != string(ProviderBasic) {
			t.Errorf("proveedor por defecto incorrecto: %s", cfg.DefaultProvider)
		}
		if cfg.Ollama.BaseURL != DefaultOllamaURL {
			t.Errorf("URL de ollama por defecto incorrecta: %s", cfg.Ollama.BaseURL)
		}

		if _, err := os.Stat(filepath.Join(tmpDir, ".matepr", "config.json")); err != nil {
			t.Errorf("el archivo de configuración debería existir: %v", err)
		}
	})

	t.Run("debería cargar una configuración existente", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".matepr")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatal(err)
		}

		config := &Config{
			Language:        LangES,
			DefaultProvider: string(ProviderOllama),
			Ollama: OllamaConfig{
				BaseURL: "http://miserver:11434",
				Model:   "mistral",
			},
		}

		data, _ := json.MarshalIndent(config, "", "  ")
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatalf("no se esperaba error: %v", err)
		}

		if cfg.Language != LangES {
			t.Errorf("idioma incorrecto: %s", cfg.Language)
		}
		if cfg.Ollama.BaseURL != "http://miserver:11434" {
			t.Errorf("URL de ollama incorrecta: %s", cfg.Ollama.BaseURL)
		}
	})

	t.Run("debería manejar configuración inválida", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".matepr")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatal(err)
		}

		config := &Config{
			Language:        "fr",
			DefaultProvider: string(ProviderBasic),
		}

		data, _ := json.MarshalIndent(config, "", "  ")
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(tmpDir)
		if err == nil {
			t.Error("se esperaba un error debido a configuración inválida")
		}
	})

	t.Run("debería manejar JSON malformado", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".matepr")
		_ = os.MkdirAll(configDir, 0755)

		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{malformed json"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(tmpDir)
		if err == nil {
			t.Error("se esperaba un error al cargar JSON malformado")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería guardar y recargar la configuración", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}

		cfg.Language = LangES
		cfg.DefaultProvider = string(ProviderOpenAI)
		if err := SaveConfig(cfg); err != nil {
			t.Fatalf("no se esperaba error al guardar: %v", err)
		}

		reloaded, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		if reloaded.Language != LangES {
			t.Errorf("el idioma no se persistió: %s", reloaded.Language)
		}
		if reloaded.DefaultProvider != string(ProviderOpenAI) {
			t.Errorf("el proveedor no se persistió: %s", reloaded.DefaultProvider)
		}
	})

	t.Run("debería fallar al guardar configuración inválida", func(t *testing.T) {
		config := &Config{
			Language:        "fr",
			DefaultProvider: string(ProviderBasic),
		}

		err := SaveConfig(config)
		if err == nil {
			t.Error("se esperaba un error al guardar configuración inválida, pero no ocurrió")
		}
	})

	t.Run("debería fallar sin ruta de archivo", func(t *testing.T) {
		config := &Config{
			Language:        LangEN,
			DefaultProvider: string(ProviderBasic),
			Ollama:          OllamaConfig{BaseURL: DefaultOllamaURL},
		}

		err := SaveConfig(config)
		if err == nil {
			t.Error("se esperaba un error al no tener ruta definida")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("las variables de entorno pisan la config sin persistirse", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("GITHUB_TOKEN", "env-token")
		t.Setenv("OPENAI_API_KEY", "env-openai-key")
		t.Setenv("OLLAMA_BASE_URL", "http://otro:11434")

		cfg, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}

		ApplyEnv(cfg)

		if cfg.GitHubToken != "env-token" {
			t.Errorf("el token del entorno debería aplicarse, obtuvo: %s", cfg.GitHubToken)
		}
		if cfg.APIKeyFor(string(ProviderOpenAI)) != "env-openai-key" {
			t.Errorf("la API key del entorno debería aplicarse")
		}
		if cfg.Ollama.BaseURL != "http://otro:11434" {
			t.Errorf("la URL de ollama del entorno debería aplicarse, obtuvo: %s", cfg.Ollama.BaseURL)
		}

		// El archivo en disco no debe contener los secretos del entorno.
		data, err := os.ReadFile(filepath.Join(tmpDir, ".matepr", "config.json"))
		if err != nil {
			t.Fatal(err)
		}
		var onDisk Config
		if err := json.Unmarshal(data, &onDisk); err != nil {
			t.Fatal(err)
		}
		if onDisk.GitHubToken != "" {
			t.Error("el token del entorno no debería persistirse en el archivo")
		}
	})

	t.Run("sin variables de entorno la config no cambia", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("OLLAMA_BASE_URL", "")

		cfg, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}

		ApplyEnv(cfg)

		if cfg.GitHubToken != "" {
			t.Errorf("no debería haber token, obtuvo: %s", cfg.GitHubToken)
		}
		if cfg.Ollama.BaseURL != DefaultOllamaURL {
			t.Errorf("la URL de ollama debería ser la default, obtuvo: %s", cfg.Ollama.BaseURL)
		}
	})
}

func TestConfigResolvers(t *testing.T) {
	cfg := &Config{
		Language:        LangEN,
		DefaultProvider: string(ProviderBasic),
		AIProviders: map[string]AIProviderConfig{
			string(ProviderOpenAI): {APIKey: "sk-test", Model: "gpt-4o"},
			string(ProviderGemini): {},
		},
		Ollama: OllamaConfig{BaseURL: DefaultOllamaURL, Model: "llama3"},
	}

	t.Run("ProviderOrDefault", func(t *testing.T) {
		if got := cfg.ProviderOrDefault(""); got != string(ProviderBasic) {
			t.Errorf("esperaba el proveedor por defecto, obtuvo: %s", got)
		}
		if got := cfg.ProviderOrDefault("ollama"); got != "ollama" {
			t.Errorf("esperaba ollama, obtuvo: %s", got)
		}
	})

	t.Run("ModelFor", func(t *testing.T) {
		if got := cfg.ModelFor(string(ProviderOpenAI)); got != "gpt-4o" {
			t.Errorf("esperaba el modelo configurado, obtuvo: %s", got)
		}
		if got := cfg.ModelFor(string(ProviderGemini)); got != string(ModelGeminiV15Flash) {
			t.Errorf("esperaba el modelo por defecto de gemini, obtuvo: %s", got)
		}
		if got := cfg.ModelFor(string(ProviderOllama)); got != "llama3" {
			t.Errorf("esperaba el modelo de ollama, obtuvo: %s", got)
		}
	})

	t.Run("APIKeyFor", func(t *testing.T) {
		if got := cfg.APIKeyFor(string(ProviderOpenAI)); got != "sk-test" {
			t.Errorf("esperaba la API key configurada, obtuvo: %s", got)
		}
		if got := cfg.APIKeyFor(string(ProviderOllama)); got != "" {
			t.Errorf("ollama no tiene API key, obtuvo: %s", got)
		}
	})
}
