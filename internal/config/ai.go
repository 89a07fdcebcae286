package config

type Provider string

const (
	ProviderBasic  Provider = "basic"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

type Model string

const (
	ModelGPT35Turbo Model = "gpt-3.5-turbo"
	ModelGPT4oMini  Model = "gpt-4o-mini"
	ModelGPT4o      Model = "gpt-4o"

	ModelGeminiV15Flash Model = "gemini-1.5-flash"
	ModelGeminiV15Pro   Model = "gemini-1.5-pro"

	ModelLlama2  Model = "llama2"
	ModelLlama3  Model = "llama3"
	ModelMistral Model = "mistral"
)

func SupportedProviders() []Provider {
	return []Provider{
		ProviderBasic,
		ProviderOpenAI,
		ProviderGemini,
		ProviderOllama,
	}
}

func IsSupportedProvider(name string) bool {
	for _, p := range SupportedProviders() {
		if string(p) == name {
			return true
		}
	}
	return false
}

func ModelsForProvider(p Provider) []Model {
	switch p {
	case ProviderOpenAI:
		return []Model{
			ModelGPT35Turbo,
			ModelGPT4oMini,
			ModelGPT4o,
		}
	case ProviderGemini:
		return []Model{
			ModelGeminiV15Flash,
			ModelGeminiV15Pro,
		}
	case ProviderOllama:
		return []Model{
			ModelLlama2,
			ModelLlama3,
			ModelMistral,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForProvider(p Provider) Model {
	models := ModelsForProvider(p)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}
