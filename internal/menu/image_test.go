package menu

import "testing"

func TestNormalizeImageSrc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://cdn.example.com/pizza.jpg", "https://cdn.example.com/pizza.jpg"},
		{"http://cdn.example.com/pizza.jpg", "http://cdn.example.com/pizza.jpg"},
		{"/public/images/pizza.jpg", "/images/pizza.jpg"},
		{"/images/pizza.jpg", "/images/pizza.jpg"},
		{"images/pizza.jpg", "/images/pizza.jpg"},
		{"", ""},
		{"   ", ""},
		{"//evil.example.com/x.jpg", ""},
	}
	for _, tt := range tests {
		if got := NormalizeImageSrc(tt.in); got != tt.want {
			t.Fatalf("NormalizeImageSrc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImageSrcPlaceholderFallback(t *testing.T) {
	t.Parallel()

	if got := ImageSrc(""); got != PlaceholderImage {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if got := ImageSrc("/images/suco.png"); got != "/images/suco.png" {
		t.Fatalf("expected original path, got %q", got)
	}
}
