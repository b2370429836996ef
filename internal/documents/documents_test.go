package documents

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsTextContent(t *testing.T) {
	cases := []struct {
		contentType string
		want        bool
	}{
		{"text/plain", true},
		{"text/plain; charset=utf-8", true},
		{"text/markdown", true},
		{"application/json", true},
		{"application/xml", true},
		{"application/x-ndjson", true},
		{"application/pdf", false},
		{"application/octet-stream", false},
		{"image/png", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.contentType, func(t *testing.T) {
			if got := IsTextContent(tc.contentType); got != tc.want {
				t.Errorf("IsTextContent(%q) = %v, want %v", tc.contentType, got, tc.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"path stripped", "../../etc/passwd", "passwd"},
		{"empty", "", "document"},
		{"dot", ".", "document"},
		{"spaces escaped", "my report.pdf", "my%20report.pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeFilename(tc.in); got != tc.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildStorageKey(t *testing.T) {
	id := uuid.MustParse("9de54ea8-f1cf-4b98-b32e-3f6d0b38c8f9")
	got := buildStorageKey(id, "report.pdf")
	want := "documents/9de54ea8-f1cf-4b98-b32e-3f6d0b38c8f9/report.pdf"
	if got != want {
		t.Errorf("buildStorageKey = %q, want %q", got, want)
	}
}

func TestDetectContentType(t *testing.T) {
	t.Run("explicit header wins", func(t *testing.T) {
		got := detectContentType("application/pdf", []byte("plain text"))
		if got != "application/pdf" {
			t.Errorf("expected header value, got %q", got)
		}
	})

	t.Run("octet-stream falls back to sniffing", func(t *testing.T) {
		got := detectContentType("application/octet-stream", []byte("%PDF-1.7"))
		if got != "application/pdf" {
			t.Errorf("expected sniffed pdf, got %q", got)
		}
	})

	t.Run("empty header falls back to sniffing", func(t *testing.T) {
		got := detectContentType("", []byte("hello world"))
		if got != "text/plain; charset=utf-8" {
			t.Errorf("expected sniffed text, got %q", got)
		}
	})
}

func TestExtractTextContent(t *testing.T) {
	t.Run("text content returned", func(t *testing.T) {
		got := extractTextContent([]byte("hello"), "text/plain")
		if got == nil || *got != "hello" {
			t.Errorf("expected hello, got %v", got)
		}
	})

	t.Run("binary content skipped", func(t *testing.T) {
		if got := extractTextContent([]byte{0xff, 0xfe, 0x00}, "text/plain"); got != nil {
			t.Errorf("expected nil for invalid utf8, got %q", *got)
		}
	})

	t.Run("non-text content skipped", func(t *testing.T) {
		if got := extractTextContent([]byte("data"), "application/pdf"); got != nil {
			t.Errorf("expected nil for pdf, got %q", *got)
		}
	})
}
