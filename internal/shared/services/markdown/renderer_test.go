package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "numbered steps",
			input:    "1. Open settings\n2. Click **Reset**",
			contains: []string{"<ol>", "<li>Open settings</li>", "<strong>Reset</strong>"},
		},
		{
			name:     "script is stripped",
			input:    "Hello <script>alert(1)</script>",
			contains: []string{"Hello"},
			excludes: []string{"<script>", "alert(1)"},
		},
		{
			name:     "code block",
			input:    "```\nipconfig /flushdns\n```",
			contains: []string{"<pre>", "ipconfig /flushdns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
