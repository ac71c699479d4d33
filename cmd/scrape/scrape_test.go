package scrape

import "testing"

func TestResolveRelevantOnly(t *testing.T) {
	tests := []struct {
		name       string
		flag       bool
		flagSet    bool
		configured bool
		want       bool
	}{
		{"flag unset falls back to config on", false, false, true, true},
		{"flag unset falls back to config off", false, false, false, false},
		{"explicit true overrides config off", true, true, false, true},
		{"explicit false overrides config on", false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRelevantOnly(tt.flag, tt.flagSet, tt.configured)
			if got != tt.want {
				t.Errorf("resolveRelevantOnly(%v, %v, %v) = %v, want %v",
					tt.flag, tt.flagSet, tt.configured, got, tt.want)
			}
		})
	}
}
