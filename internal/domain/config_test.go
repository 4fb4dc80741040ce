package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bleready/bleready/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.OutputAuto, cfg.Output)
	assert.Equal(t, domain.RecommendNoGo, cfg.FailOn)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.StampCommit)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithDefaultsKeepsSetFields(t *testing.T) {
	cfg := domain.Config{Output: domain.OutputJSON, StampCommit: true}.WithDefaults()
	assert.Equal(t, domain.OutputJSON, cfg.Output)
	assert.Equal(t, domain.RecommendNoGo, cfg.FailOn)
	assert.True(t, cfg.StampCommit)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.Config
		wantErr string
	}{
		{"empty is valid", domain.Config{}, ""},
		{"unknown output", domain.Config{Output: "xml"}, "unknown output"},
		{"fail_on GO rejected", domain.Config{FailOn: domain.RecommendGo}, "unknown fail_on"},
		{"fail_on conditional accepted", domain.Config{FailOn: domain.RecommendConditionalGo}, ""},
		{"unknown log level", domain.Config{LogLevel: "trace"}, "unknown log_level"},
		{"unknown log format", domain.Config{LogFormat: "xml"}, "unknown log_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Fails(t *testing.T) {
	noGo := domain.Config{}
	assert.True(t, noGo.Fails(domain.RecommendNoGo))
	assert.False(t, noGo.Fails(domain.RecommendConditionalGo))
	assert.False(t, noGo.Fails(domain.RecommendGo))

	strict := domain.Config{FailOn: domain.RecommendConditionalGo}
	assert.True(t, strict.Fails(domain.RecommendNoGo))
	assert.True(t, strict.Fails(domain.RecommendConditionalGo))
	assert.False(t, strict.Fails(domain.RecommendGo))
}
