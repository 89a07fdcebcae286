package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		Language        string                      `json:"language"`
		DefaultProvider string                      `json:"default_provider"`
		GitHubToken     string                      `json:"github_token,omitempty"`
		AIProviders     map[string]AIProviderConfig `json:"ai_providers"`
		Ollama          OllamaConfig                `json:"ollama"`
		PathFile        string                      `json:"path_file"`
	}

	// AIProviderConfig es la configuración por proveedor remoto (openai, gemini).
	AIProviderConfig struct {
		APIKey      string  `json:"api_key,omitempty"`
		Model       string  `json:"model,omitempty"`
		Temperature float64 `json:"temperature,omitempty"`
		MaxTokens   int     `json:"max_tokens,omitempty"`
	}

	// OllamaConfig es la configuración del servidor local de ollama.
	OllamaConfig struct {
		BaseURL string `json:"base_url"`
		Model   string `json:"model"`
	}
)

const (
	defaultLang        = "en"
	defaultProvider    = string(ProviderBasic)
	defaultTemperature = 0.3

	// DefaultOllamaURL es la dirección local fija que se asume cuando no hay
	// configuración explícita.
	DefaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama2"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".matepr")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath
	normalizeConfig(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:        defaultLang,
		DefaultProvider: defaultProvider,
		AIProviders: map[string]AIProviderConfig{
			string(ProviderOpenAI): {
				Model:       string(DefaultModelForProvider(ProviderOpenAI)),
				Temperature: defaultTemperature,
			},
			string(ProviderGemini): {
				Model:       string(DefaultModelForProvider(ProviderGemini)),
				Temperature: defaultTemperature,
			},
		},
		Ollama: OllamaConfig{
			BaseURL: DefaultOllamaURL,
			Model:   defaultOllamaModel,
		},
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

// ApplyEnv superpone las variables de entorno sobre la configuración cargada.
// El overlay no se persiste: los tokens que llegan por entorno nunca se
// escriben al archivo. Se llama después de SaveConfig en el arranque.
func ApplyEnv(config *Config) {
	_ = godotenv.Load()

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		config.GitHubToken = token
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		p := config.AIProviders[string(ProviderOpenAI)]
		p.APIKey = key
		config.AIProviders[string(ProviderOpenAI)] = p
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		p := config.AIProviders[string(ProviderGemini)]
		p.APIKey = key
		config.AIProviders[string(ProviderGemini)] = p
	}

	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		config.Ollama.BaseURL = url
	}

	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		config.Ollama.Model = model
	}

	if lang := os.Getenv("MATEPR_LANG"); lang != "" {
		config.Language = GetLocaleConfig(lang)
	}
}

func normalizeConfig(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.DefaultProvider == "" {
		config.DefaultProvider = defaultProvider
	}
	if config.AIProviders == nil {
		config.AIProviders = make(map[string]AIProviderConfig)
	}
	if config.Ollama.BaseURL == "" {
		config.Ollama.BaseURL = DefaultOllamaURL
	}
	if config.Ollama.Model == "" {
		config.Ollama.Model = defaultOllamaModel
	}
}

func validateConfig(config *Config) error {
	if config.Language != LangEN && config.Language != LangES {
		return fmt.Errorf("idioma '%s' no soportado", config.Language)
	}

	if !IsSupportedProvider(config.DefaultProvider) {
		return fmt.Errorf("proveedor '%s' no soportado", config.DefaultProvider)
	}

	if config.Ollama.BaseURL == "" {
		return errors.New("la URL de ollama no puede estar vacía")
	}

	return nil
}

// ProviderOrDefault resuelve el proveedor a usar para una invocación.
func (c *Config) ProviderOrDefault(name string) string {
	if name != "" {
		return name
	}
	return c.DefaultProvider
}

// ModelFor devuelve el modelo configurado para un proveedor, cayendo al
// modelo por defecto cuando no hay nada configurado.
func (c *Config) ModelFor(provider string) string {
	if provider == string(ProviderOllama) {
		return c.Ollama.Model
	}
	if p, ok := c.AIProviders[provider]; ok && p.Model != "" {
		return p.Model
	}
	return string(DefaultModelForProvider(Provider(provider)))
}

// APIKeyFor devuelve la API key configurada para un proveedor remoto.
func (c *Config) APIKeyFor(provider string) string {
	if p, ok := c.AIProviders[provider]; ok {
		return p.APIKey
	}
	return ""
}
