package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bleready/bleready/internal/domain"
)

const (
	configURI     = "bleready://config"
	vocabularyURI = "bleready://vocabulary"
)

// vocabulary lists the enum values a validation result may use.
type vocabulary struct {
	Categories       []domain.Category        `json:"categories"`
	Components       []domain.Component       `json:"components"`
	Efforts          []domain.Effort          `json:"efforts"`
	Ratings          []domain.Rating          `json:"ratings"`
	QualityTiers     []domain.QualityTier     `json:"quality_tiers"`
	SecurityTiers    []domain.SecurityTier    `json:"security_tiers"`
	PerformanceTiers []domain.PerformanceTier `json:"performance_tiers"`
	ConfigReadiness  []domain.ConfigReadiness `json:"config_readiness"`
}

func newVocabulary() vocabulary {
	return vocabulary{
		Categories: domain.Categories,
		Components: domain.Components,
		Efforts:    []domain.Effort{domain.EffortLow, domain.EffortMedium, domain.EffortHigh},
		Ratings:    []domain.Rating{domain.RatingPass, domain.RatingConditional, domain.RatingFail},
		QualityTiers: []domain.QualityTier{
			domain.QualityExcellent, domain.QualityGood, domain.QualityNeedsImprovement, domain.QualityPoor,
		},
		SecurityTiers: []domain.SecurityTier{
			domain.SecuritySecure, domain.SecurityModerate, domain.SecurityVulnerable,
		},
		PerformanceTiers: []domain.PerformanceTier{
			domain.PerformanceExcellent, domain.PerformanceGood, domain.PerformanceAcceptable, domain.PerformancePoor,
		},
		ConfigReadiness: []domain.ConfigReadiness{
			domain.ConfigReady, domain.ConfigNeedsConfiguration, domain.ConfigMissingCritical,
		},
	}
}

func registerResources(s *server.MCPServer, cfg domain.Config) {
	// 1. bleready://config - effective tool configuration
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective bleready configuration after defaults and overrides"),
			mcplib.WithMIMEType("application/json"),
		),
		staticJSON(configURI, cfg.WithDefaults()),
	)

	// 2. bleready://vocabulary - accepted enum values
	s.AddResource(
		mcplib.NewResource(
			vocabularyURI,
			"Result Vocabulary",
			mcplib.WithResourceDescription("Categories, components, efforts and tiers accepted in validation results"),
			mcplib.WithMIMEType("application/json"),
		),
		staticJSON(vocabularyURI, newVocabulary()),
	)
}

func staticJSON(uri string, v any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", uri, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
