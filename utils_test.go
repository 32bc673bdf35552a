package tweeter_test

import (
	"testing"

	"github.com/sagarc03/tweeter"
)

func TestIsValidResourceName(t *testing.T) {
	// Create a name with invalid UTF-8 (without embedding raw invalid bytes in source)
	invalidUTF8 := string([]byte{'a', 0xff, '.', 'h', 't', 'm', 'l'})

	tt := []struct {
		Name string
		Path string
		Want bool
	}{
		// Basics
		{Name: "empty", Path: "", Want: false},
		{Name: "root", Path: "/", Want: false},
		{Name: "single dot", Path: ".", Want: false},
		{Name: "absolute", Path: "/index.html", Want: false},
		{Name: "ends with slash", Path: "assets/", Want: false},

		// Traversal
		{Name: "parent segment", Path: "../index.html", Want: false},
		{Name: "parent in middle", Path: "a/../index.html", Want: false},
		{Name: "double dots in name", Path: "index..html", Want: false},
		{Name: "dot segment prefix", Path: "./index.html", Want: false},
		{Name: "dot segment middle", Path: "a/./index.html", Want: false},
		{Name: "dot segment end", Path: "a/.", Want: false},
		{Name: "empty segment", Path: "a//index.html", Want: false},

		// Forbidden characters
		{Name: "backslash", Path: `a\index.html`, Want: false},
		{Name: "space", Path: "my page.html", Want: false},
		{Name: "tab", Path: "index\t.html", Want: false},
		{Name: "newline", Path: "index\n.html", Want: false},
		{Name: "NUL", Path: "index\x00.html", Want: false},
		{Name: "DEL", Path: "index\x7f.html", Want: false},
		{Name: "invalid utf8", Path: invalidUTF8, Want: false},

		// Valid
		{Name: "default index", Path: tweeter.IndexResource, Want: true},
		{Name: "default 404", Path: tweeter.NotFoundResource, Want: true},
		{Name: "nested", Path: "assets/style.css", Want: true},
		{Name: "hidden file", Path: ".well-known/security.txt", Want: true},
		{Name: "unicode", Path: "café.html", Want: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			if got := tweeter.IsValidResourceName(tc.Path); got != tc.Want {
				t.Errorf("IsValidResourceName(%q) = %v, want %v", tc.Path, got, tc.Want)
			}
		})
	}
}

func TestIsValidRequestPath(t *testing.T) {
	tt := []struct {
		Name string
		Path string
		Want bool
	}{
		{Name: "root", Path: "/", Want: true},
		{Name: "file", Path: "/index.html", Want: true},
		{Name: "trailing slash kept", Path: "/docs/", Want: true},
		{Name: "upper case kept", Path: "/INDEX.HTML", Want: true},
		{Name: "percent encoded kept", Path: "/index%2Ehtml", Want: true},
		{Name: "empty", Path: "", Want: false},
		{Name: "relative", Path: "index.html", Want: false},
		{Name: "query", Path: "/?q=1", Want: false},
		{Name: "fragment", Path: "/#top", Want: false},
		{Name: "space", Path: "/a b", Want: false},
		{Name: "control", Path: "/a\x01", Want: false},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			if got := tweeter.IsValidRequestPath(tc.Path); got != tc.Want {
				t.Errorf("IsValidRequestPath(%q) = %v, want %v", tc.Path, got, tc.Want)
			}
		})
	}
}
