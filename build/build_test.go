package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"spritec/sprite"
)

func TestClassName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"logo.png", "logo"},
		{"My Icon.png", "my-icon"},
		{"nav_home.jpeg", "nav-home"},
		{"icon.small.png", "icon-small"},
	}

	for _, tc := range cases {
		if got := className(tc.name); got != tc.want {
			t.Errorf("className(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"icon10.png", "icon2.png", "readme.txt", "photo.jpg", "vector.svg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := listImages(dir)
	if err != nil {
		t.Fatalf("listImages failed: %v", err)
	}

	want := []string{"icon2.png", "icon10.png", "photo.jpg"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.xml")

	blocks := []*sprite.Block{
		{ID: 1, Filename: "a.png", X: 0, Y: 0, Options: sprite.Options{Width: 20, Height: 20}},
		{ID: 2, Filename: "b.png", X: 10, Y: 30, Options: sprite.Options{Width: 10, Height: 40}},
	}
	if err := writeManifest(path, "sprite.png", blocks); err != nil {
		t.Fatalf("writeManifest failed: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatalf("manifest is not valid XML: %v", err)
	}

	atlas := doc.SelectElement("atlas")
	if atlas == nil {
		t.Fatal("expected atlas root element")
	}
	if got := atlas.SelectAttrValue("sheet", ""); got != "sprite.png" {
		t.Errorf("sheet = %q, want sprite.png", got)
	}

	els := atlas.SelectElements("block")
	if len(els) != 2 {
		t.Fatalf("expected 2 block elements, got %d", len(els))
	}
	if got := els[1].SelectAttrValue("y", ""); got != "30" {
		t.Errorf("second block y = %q, want 30", got)
	}
	if got := els[1].SelectAttrValue("height", ""); got != "40" {
		t.Errorf("second block height = %q, want 40", got)
	}
}

func TestWritePreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.html")

	blocks := []*sprite.Block{
		{ID: 1, Filename: "logo.png", X: 0, Y: 0, Options: sprite.Options{Width: 20, Height: 20}},
		{ID: 2, Filename: "nav home.png", X: 10, Y: 30, Options: sprite.Options{Width: 10, Height: 40}},
	}
	if err := writePreview(path, "sprite.png", blocks, "test-build"); err != nil {
		t.Fatalf("writePreview failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read preview: %v", err)
	}
	html := string(data)

	for _, want := range []string{"sprite.png", "test-build", "logo", "nav-home", "-10px -30px"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in rendered preview:\n%s", want, html)
		}
	}
}
