package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Diploma in Civil Engineering  ", "Diploma in Civil Engineering"},
		{"Hello<script>alert(1)</script> world", "Hello world"},
		{"<SCRIPT type=\"text/javascript\">\nsteal()\n</SCRIPT>Safe", "Safe"},
		{"javascript:alert(1)", "alert(1)"},
		{`<img src=x onerror=alert(1)>`, "<img src=x alert(1)>"},
		{"plain text", "plain text"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeString(tt.in), tt.in)
	}
}

func TestSanitize_Nested(t *testing.T) {
	in := map[string]any{
		"title":  " <script>x</script>Open House ",
		"rating": 4.0,
		"tags":   []any{"javascript:void(0)", true},
		"links":  map[string]any{"twitter": " @college "},
	}

	out := Sanitize(in).(map[string]any)

	assert.Equal(t, "Open House", out["title"])
	assert.Equal(t, 4.0, out["rating"])
	assert.Equal(t, []any{"void(0)", true}, out["tags"])
	assert.Equal(t, "@college", out["links"].(map[string]any)["twitter"])
}
