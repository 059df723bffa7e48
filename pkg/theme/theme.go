package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/crouton-dev/crouton/pkg/toast"
)

// Theme is a parsed theme with metadata.
type Theme struct {
	Name      string    // Theme name (without .toml extension)
	Path      string    // Full path to the TOML file (empty for bundled)
	Spec      Spec      // The parsed document
	ModTime   time.Time // Last modification time
	IsDefault bool      // True if this is the embedded default theme

	raw string // for change detection on reload
}

// NewTheme creates a Theme by loading a TOML file.
func NewTheme(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}

	return &Theme{
		Name:    name,
		Path:    path,
		Spec:    spec,
		ModTime: info.ModTime(),
		raw:     string(data),
	}, nil
}

// NewDefaultTheme creates the embedded default theme.
func NewDefaultTheme() *Theme {
	raw, _ := GetEmbeddedTheme(DefaultThemeName)
	spec, _ := Parse([]byte(raw))
	return &Theme{
		Name:      DefaultThemeName,
		Spec:      spec,
		IsDefault: true,
		raw:       raw,
	}
}

// LoadEmbedded creates a Theme from a bundled theme by name.
func LoadEmbedded(name string) (*Theme, error) {
	raw, found := GetEmbeddedTheme(name)
	if !found {
		return nil, fmt.Errorf("no bundled theme named %q", name)
	}
	spec, err := Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return &Theme{
		Name:      name,
		Spec:      spec,
		IsDefault: name == DefaultThemeName,
		raw:       raw,
	}, nil
}

// Parse decodes and validates a theme document.
func Parse(data []byte) (Spec, error) {
	var spec Spec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Apply installs the theme's styles into a toast configuration.
func (t *Theme) Apply(cfg *toast.Config) {
	base, levels := t.Spec.Styles()
	cfg.Style = &base
	cfg.LevelStyles = levels
}

// Reload reloads the theme from disk. It returns true if the content
// changed. On a parse error the previous spec is kept.
func (t *Theme) Reload() (bool, error) {
	if t.IsDefault {
		return false, nil
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return false, err
	}
	if !info.ModTime().After(t.ModTime) {
		return false, nil
	}

	data, err := os.ReadFile(t.Path)
	if err != nil {
		return false, err
	}

	spec, err := Parse(data)
	if err != nil {
		return false, fmt.Errorf("theme %s: %w", t.Name, err)
	}

	changed := t.raw != string(data)
	t.Spec = spec
	t.raw = string(data)
	t.ModTime = info.ModTime()
	return changed, nil
}

// Info provides basic theme information for listing.
type Info struct {
	Name      string
	Path      string
	IsDefault bool
	IsBundled bool
}

// ListAvailableThemes lists all available themes, bundled and user.
// A user theme with a bundled theme's name shadows it.
func ListAvailableThemes() ([]Info, error) {
	seen := make(map[string]bool)
	var themes []Info

	themesDir, dirErr := ThemesDir()
	if dirErr == nil {
		entries, err := os.ReadDir(themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				if filepath.Ext(name) != ".toml" {
					continue
				}
				themeName := strings.TrimSuffix(name, ".toml")
				if !seen[themeName] {
					seen[themeName] = true
					themes = append(themes, Info{
						Name: themeName,
						Path: filepath.Join(themesDir, name),
					})
				}
			}
		} else if !os.IsNotExist(err) {
			return themes, err
		}
	}

	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, Info{
				Name:      name,
				IsDefault: name == DefaultThemeName,
				IsBundled: true,
			})
		}
	}

	return themes, nil
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "crouton", "themes"), nil
}

// CreateThemesDir creates the themes directory if it doesn't exist.
func CreateThemesDir() error {
	themesDir, err := ThemesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(themesDir, 0755)
}
