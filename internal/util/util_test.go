package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain", raw: "Region A", expected: "Region A"},
		{name: "surrounding spaces", raw: "  Cebu  ", expected: "Cebu"},
		{name: "double quoted", raw: `"Quezon City"`, expected: "Quezon City"},
		{name: "quoted with inner spaces", raw: ` " Makati " `, expected: "Makati"},
		{name: "empty", raw: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeName(tt.raw); got != tt.expected {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "already clean", raw: "toyota.png", expected: "toyota.png"},
		{name: "spaces and dashes", raw: "Mitsubishi Motors-logo (1).svg", expected: "MitsubishiMotorslogo1.svg"},
		{name: "path separators", raw: "../../etc/passwd", expected: "....etcpasswd"},
		{name: "non ascii", raw: "logoñ.png", expected: "logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFileName(tt.raw); got != tt.expected {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stored   string
		expected string
	}{
		{name: "bare key", stored: "user-1/front.jpg", expected: "user-1/front.jpg"},
		{
			name:     "public url",
			stored:   "https://cdn.autobid.test/storage/v1/object/public/kyc-documents/user-1/front.jpg",
			expected: "user-1/front.jpg",
		},
		{
			name:     "signed url with query",
			stored:   "https://cdn.autobid.test/kyc-documents/user-1/selfie.jpg?token=abc",
			expected: "user-1/selfie.jpg",
		},
		{name: "relative with bucket", stored: "kyc-documents/user-2/back.jpg?x=1", expected: "user-2/back.jpg"},
		{name: "empty", stored: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ObjectKey(tt.stored, "kyc-documents"); got != tt.expected {
				t.Fatalf("ObjectKey(%q) = %q, want %q", tt.stored, got, tt.expected)
			}
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	first, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword returned error: %v", err)
	}
	second, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword returned error: %v", err)
	}

	if len(first) != 16 || len(second) != 16 {
		t.Fatalf("unexpected password lengths %d and %d", len(first), len(second))
	}
	if first == second {
		t.Fatalf("two generated passwords are identical: %s", first)
	}
}

func TestCalculateFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "locations.csv")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := CalculateFileChecksum(path)
	if err != nil {
		t.Fatalf("CalculateFileChecksum returned error: %v", err)
	}

	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("CalculateFileChecksum = %s, want %s", got, want)
	}
}
