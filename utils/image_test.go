package utils

import (
	"encoding/base64"
	"testing"
)

func TestValidImageRef(t *testing.T) {
	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fakepng"))

	cases := []struct {
		ref  string
		want bool
	}{
		{"https://picsum.photos/seed/osh/400/300", true},
		{"http://example.com/a.jpg", true},
		{png, true},
		{"data:image/png;base64,!!!notbase64!!!", false},
		{"data:text/plain;base64,aGVsbG8=", false},
		{"", false},
		{"osh.png", false},
	}
	for _, tc := range cases {
		if got := ValidImageRef(tc.ref); got != tc.want {
			t.Errorf("ValidImageRef(%.40q) = %v, want %v", tc.ref, got, tc.want)
		}
	}
}
