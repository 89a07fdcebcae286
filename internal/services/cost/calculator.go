package cost

import (
	"fmt"
	"strings"
)

type PricingTable struct {
	InputPricePerMillion  float64
	OutputPricePerMillion float64
}

type ProviderPricing map[string]map[string]PricingTable

// Precios publicados por cada proveedor:
// https://openai.com/api/pricing
// https://ai.google.dev/gemini-api/docs/pricing
// Los proveedores locales (ollama) y el heurístico (basic) no figuran a
// propósito: su costo es cero.
func defaultPricing() ProviderPricing {
	return ProviderPricing{
		"openai": {
			"gpt-3.5-turbo": {InputPricePerMillion: 0.50, OutputPricePerMillion: 1.50},
			"gpt-4o-mini":   {InputPricePerMillion: 0.15, OutputPricePerMillion: 0.60},
			"gpt-4o":        {InputPricePerMillion: 2.50, OutputPricePerMillion: 10.00},
		},
		"gemini": {
			"gemini-1.5-flash": {InputPricePerMillion: 0.075, OutputPricePerMillion: 0.30},
			"gemini-1.5-pro":   {InputPricePerMillion: 1.25, OutputPricePerMillion: 5.00},
		},
	}
}

// Calculator estima el costo en dólares de una llamada a partir de los tokens
// consumidos. Cada instancia lleva su propia tabla de precios.
type Calculator struct {
	pricing ProviderPricing
}

func NewCalculator() *Calculator {
	return &Calculator{pricing: defaultPricing()}
}

// EstimateCost calcula el costo estimado según proveedor, modelo y tokens.
// Si el proveedor o el modelo no están en la tabla devuelve 0.
func (c *Calculator) EstimateCost(provider, model string, inputTokens, outputTokens int) float64 {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)

	providerPricing, exists := c.pricing[provider]
	if !exists {
		return 0
	}

	modelPricing, exists := providerPricing[model]
	if !exists {
		// Los proveedores suelen versionar los modelos con sufijos tipo
		// gpt-4o-2024-08-06, así que se intenta un match parcial.
		for modelName, prices := range providerPricing {
			if strings.Contains(model, modelName) {
				modelPricing = prices
				break
			}
		}
		if modelPricing.InputPricePerMillion == 0 {
			return 0
		}
	}

	inputCost := (float64(inputTokens) / 1_000_000) * modelPricing.InputPricePerMillion
	outputCost := (float64(outputTokens) / 1_000_000) * modelPricing.OutputPricePerMillion

	return inputCost + outputCost
}

// GetPricing devuelve la tabla de precios para un proveedor y modelo.
func (c *Calculator) GetPricing(provider, model string) (PricingTable, error) {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)

	providerPricing, exists := c.pricing[provider]
	if !exists {
		return PricingTable{}, fmt.Errorf("provider %s not found", provider)
	}

	modelPricing, exists := providerPricing[model]
	if !exists {
		return PricingTable{}, fmt.Errorf("model %s not found for provider %s", model, provider)
	}

	return modelPricing, nil
}

// AddPricing permite agregar precios en caliente (útil para tests o modelos
// nuevos). Solo afecta a esta instancia.
func (c *Calculator) AddPricing(provider, model string, table PricingTable) {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)

	if _, exists := c.pricing[provider]; !exists {
		c.pricing[provider] = make(map[string]PricingTable)
	}
	c.pricing[provider][model] = table
}
