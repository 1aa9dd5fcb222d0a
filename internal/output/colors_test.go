package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	// Test DefaultColorScheme
	defaultScheme := DefaultColorScheme()
	if defaultScheme.Method == nil {
		t.Error("DefaultColorScheme.Method should not be nil")
	}
	if defaultScheme.URL == nil {
		t.Error("DefaultColorScheme.URL should not be nil")
	}
	if defaultScheme.StatusOK == nil {
		t.Error("DefaultColorScheme.StatusOK should not be nil")
	}
	if defaultScheme.Timeout == nil {
		t.Error("DefaultColorScheme.Timeout should not be nil")
	}
	if defaultScheme.Transport == nil {
		t.Error("DefaultColorScheme.Transport should not be nil")
	}
	if defaultScheme.Decode == nil {
		t.Error("DefaultColorScheme.Decode should not be nil")
	}
	if defaultScheme.Build == nil {
		t.Error("DefaultColorScheme.Build should not be nil")
	}

	// Test NoColorScheme
	noColorScheme := NoColorScheme()
	if noColorScheme.Method == nil {
		t.Error("NoColorScheme.Method should not be nil")
	}
}

func TestIcons(t *testing.T) {
	tests := []struct {
		name     string
		icon     func(bool) string
		expected string
	}{
		{"Success", SuccessIcon, "✓"},
		{"Error", ErrorIcon, "✗"},
		{"Warning", WarningIcon, "⚠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.icon(true); got != tt.expected {
				t.Errorf("Expected %q with colors disabled, got %q", tt.expected, got)
			}
		})
	}
}
