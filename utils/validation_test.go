package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "etcpasswd"},
		{" .hidden. ", "hidden"},
		{"na<me>?.pdf", "name.pdf"},
		{strings.Repeat("a", 300) + ".pdf", strings.Repeat("a", 255)},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentHash(t *testing.T) {
	// sha256 of the empty string
	if got := ContentHash(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("ContentHash(\"\") = %s", got)
	}
	if ContentHash("a") == ContentHash("b") {
		t.Error("different texts hashed the same")
	}
}

func TestValidText(t *testing.T) {
	if !ValidText("Grüße. Köln!") {
		t.Error("valid UTF-8 rejected")
	}
	if ValidText("bad \xff byte") {
		t.Error("invalid UTF-8 accepted")
	}
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateRequestID() = %q is not a UUID: %v", id, err)
	}
}
