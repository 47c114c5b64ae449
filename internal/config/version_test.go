package config

import "testing"

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name       string
		envVersion string
		linked     string
		expect     string
	}{
		{name: "environment wins", envVersion: "1.2.3", linked: "0.9.0", expect: "1.2.3"},
		{name: "linker value", envVersion: "", linked: "0.9.0", expect: "0.9.0"},
		{name: "blank environment ignored", envVersion: "   ", linked: "2.0.0-beta.1", expect: "2.0.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_VERSION", tt.envVersion)
			old := buildVersion
			buildVersion = tt.linked
			defer func() { buildVersion = old }()

			if got := GetVersion(); got != tt.expect {
				t.Errorf("Expected version %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestGetVersionFallback(t *testing.T) {
	t.Setenv("APP_VERSION", "")
	old := buildVersion
	buildVersion = ""
	defer func() { buildVersion = old }()

	if got := GetVersion(); got == "" {
		t.Error("Expected a non-empty fallback version")
	}
}
