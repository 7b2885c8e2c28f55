package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smallest PNG signature, enough for content sniffing.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://example.com/sample.jpg")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}
}

func TestUtils_ShouldRejectInvalidUrl(t *testing.T) {
	for _, uri := range []string{"not-a-url", "/tmp/sample.jpg", "://missing-scheme"} {
		if IsValidUrl(uri) {
			t.Errorf("URL %q should have been rejected", uri)
		}
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleImg := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(sampleImg, pngMagic, 0644); err != nil {
		t.Fatalf("could not write sample file: %v", err)
	}

	ftype, err := DetectContentType(sampleImg)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype.(string), "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}
