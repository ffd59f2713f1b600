package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ScriptOutput: "out/scripts.html",
		StyleOutput:  "out/styles.html",
	}
}

func TestValidateSuccess(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateMissingOutputs(t *testing.T) {
	cfg := validConfig()
	cfg.ScriptOutput = ""
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "script-output")

	cfg = validConfig()
	cfg.StyleOutput = ""
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "style-output")
}

func TestValidateNilConfig(t *testing.T) {
	var cfg *Config
	require.ErrorIs(t, cfg.Validate(), ErrConfig)
}

func TestValidateDuplicateOverride(t *testing.T) {
	cfg := validConfig()
	cfg.Attributes = OverrideList{
		{Entry: "app", Attributes: Attributes{Script: []string{}, Link: []string{}}},
		{Entry: "app", Attributes: Attributes{Script: []string{}, Link: []string{}}},
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "'app'")
}

func TestValidateOverrideFieldsMustBeSequences(t *testing.T) {
	cfg := validConfig()
	cfg.Attributes = OverrideList{
		{Entry: "app", Attributes: Attributes{Link: []string{`media="all"`}}},
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrAttributes)
	assert.Contains(t, err.Error(), "script")

	cfg.Attributes = OverrideList{
		{Entry: "app", Attributes: Attributes{Script: []string{`type="module"`}}},
	}
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrAttributes)
	assert.Contains(t, err.Error(), "link")
}

func TestBaseDefault(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, DefaultBasePath, cfg.Base())

	cfg.BasePath = "/assets/"
	assert.Equal(t, "/assets/", cfg.Base())
}

func TestOverrideLookupFirstMatch(t *testing.T) {
	l := OverrideList{
		{Entry: "app", Attributes: Attributes{Script: []string{"a"}, Link: []string{}}},
		{Entry: "admin", Attributes: Attributes{Script: []string{"b"}, Link: []string{}}},
	}

	o, ok := l.Lookup("admin")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, o.Script)

	_, ok = l.Lookup("missing")
	assert.False(t, ok)
}
