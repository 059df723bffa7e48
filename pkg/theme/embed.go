package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// BundledThemes lists all embedded theme names.
var BundledThemes = []string{"default", "slate", "contrast"}

// GetEmbeddedTheme retrieves a bundled theme by name. Returns the raw
// TOML content and whether it was found.
func GetEmbeddedTheme(name string) (string, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ListEmbeddedThemes returns names of all embedded themes.
func ListEmbeddedThemes() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return BundledThemes // Fallback to known list
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			themes = append(themes, strings.TrimSuffix(name, ext))
		}
	}
	return themes
}

// IsEmbeddedTheme checks if a theme name is bundled.
func IsEmbeddedTheme(name string) bool {
	_, found := GetEmbeddedTheme(name)
	return found
}
