package security

import (
	"strings"
	"testing"
)

func TestSanitize_AllowedTags(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "p tag passes",
			input:        "<p>Reciclagem em casa</p>",
			wantContains: []string{"<p>Reciclagem em casa</p>"},
		},
		{
			name:         "headings pass",
			input:        "<h2>Por que reciclar</h2><h3>Como separar</h3>",
			wantContains: []string{"<h2>Por que reciclar</h2>", "<h3>Como separar</h3>"},
		},
		{
			name:         "lists pass",
			input:        "<ul><li>vidro</li><li>papel</li></ul>",
			wantContains: []string{"<ul>", "<li>vidro</li>", "<li>papel</li>", "</ul>"},
		},
		{
			name:         "link keeps https href",
			input:        `<a href="https://example.com">saiba mais</a>`,
			wantContains: []string{"<a", "https://example.com", "saiba mais"},
		},
		{
			name:         "https image passes",
			input:        `<img src="https://example.com/banner.png" alt="banner">`,
			wantContains: []string{"<img", "https://example.com/banner.png"},
		},
		{
			name:         "emphasis passes",
			input:        "<strong>importante</strong> e <em>urgente</em>",
			wantContains: []string{"<strong>importante</strong>", "<em>urgente</em>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, expected to contain %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestSanitize_ForbiddenContent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name         string
		input        string
		wantAbsent   []string
		wantContains []string
	}{
		{
			name:         "script removed",
			input:        `<p>ok</p><script>alert('xss')</script>`,
			wantAbsent:   []string{"<script", "alert"},
			wantContains: []string{"ok"},
		},
		{
			name:         "iframe removed",
			input:        `<p>ok</p><iframe src="https://evil.com"></iframe>`,
			wantAbsent:   []string{"<iframe", "evil.com"},
			wantContains: []string{"ok"},
		},
		{
			name:       "event attributes removed",
			input:      `<p onclick="steal()">ok</p>`,
			wantAbsent: []string{"onclick", "steal"},
		},
		{
			name:       "http image blocked",
			input:      `<img src="http://example.com/insecure.png">`,
			wantAbsent: []string{"http://example.com"},
		},
		{
			name:       "javascript href blocked",
			input:      `<a href="javascript:alert(1)">click</a>`,
			wantAbsent: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Sanitize(%q) = %q, must not contain %q", tt.input, got, absent)
				}
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, expected to contain %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestSanitize_LinksGetSafeRel(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<a href="https://example.com">saiba mais</a>`)

	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("expected target=_blank, got %q", got)
	}
	if !strings.Contains(got, "noopener") || !strings.Contains(got, "noreferrer") {
		t.Errorf("expected noopener noreferrer rel, got %q", got)
	}
}

func TestSanitize_EmptyInput(t *testing.T) {
	sanitizer := NewContentSanitizer()
	if got := sanitizer.Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want empty", got)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	sanitizer := NewContentSanitizer()
	input := `<p>ok</p><script>alert(1)</script><ul><li>a</li></ul>`

	once := sanitizer.Sanitize(input)
	twice := sanitizer.Sanitize(once)

	if once != twice {
		t.Errorf("sanitizing twice changed output: %q vs %q", once, twice)
	}
}
