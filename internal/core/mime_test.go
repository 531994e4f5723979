package core

import "testing"

func TestGetContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "index.html", want: ContentTypeHTML},
		{path: "headshot.png", want: "image/png"},
		{path: "img/HEADSHOT.JPG", want: "image/jpeg"},
		{path: "css/site.css", want: "text/css; charset=utf-8"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.path); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
