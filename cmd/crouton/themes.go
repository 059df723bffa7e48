package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crouton-dev/crouton/pkg/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List available toast themes.

Bundled themes ship inside the binary. User themes are TOML files in the
themes directory and shadow bundled themes with the same name. Theme
files edited while the demo is running are reloaded live.

Examples:
  # List all themes
  crouton themes

  # Inspect a theme's settings
  crouton themes show slate

  # Create the user themes directory
  crouton themes init`,
	RunE: runThemesList,
}

var themesShowOpts struct {
	output string
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a theme's settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesShow,
}

var themesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the user themes directory",
	RunE:  runThemesInit,
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesInitCmd)

	themesShowCmd.Flags().StringVarP(&themesShowOpts.output, "output", "o", "text",
		"Output format (text, toml, yaml)")
}

func runThemesList(cmd *cobra.Command, args []string) error {
	themes, err := theme.ListAvailableThemes()
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	if dir, err := theme.ThemesDir(); err == nil {
		fmt.Printf("User themes directory: %s\n\n", dir)
	}

	for _, t := range themes {
		marker := " "
		if t.IsDefault {
			marker = "*"
		}
		origin := "user"
		if t.IsBundled {
			origin = "bundled"
		}
		fmt.Printf("%s %-16s %s\n", marker, t.Name, origin)
	}
	return nil
}

func runThemesShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	t, err := loadThemeByName(name)
	if err != nil {
		return fmt.Errorf("failed to load theme %q: %w", name, err)
	}

	switch themesShowOpts.output {
	case "toml":
		data, err := toml.Marshal(t.Spec)
		if err != nil {
			return fmt.Errorf("failed to marshal theme: %w", err)
		}
		fmt.Print(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(t.Spec)
		if err != nil {
			return fmt.Errorf("failed to marshal theme: %w", err)
		}
		fmt.Print(string(data))
		return nil
	case "text":
	default:
		return fmt.Errorf("invalid output format %q (must be one of: text, toml, yaml)", themesShowOpts.output)
	}

	fmt.Printf("Theme: %s\n", t.Name)
	if t.Path != "" {
		fmt.Printf("Source: %s\n", t.Path)
	} else {
		fmt.Println("Source: bundled")
	}
	if t.Spec.Description != "" {
		fmt.Printf("Description: %s\n", t.Spec.Description)
	}

	fmt.Println("\nBase:")
	printStyleSpec(t.Spec.Base)

	for _, level := range []string{"info", "success", "warning", "error"} {
		override, ok := t.Spec.Levels[level]
		if !ok {
			continue
		}
		fmt.Printf("\nLevel %s:\n", level)
		printStyleSpec(override)
	}
	return nil
}

func runThemesInit(cmd *cobra.Command, args []string) error {
	if err := theme.CreateThemesDir(); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}
	dir, err := theme.ThemesDir()
	if err != nil {
		return err
	}
	fmt.Printf("Themes directory ready: %s\n", dir)
	return nil
}

// loadThemeByName resolves a name the way the demo's loader does: a user
// theme file first, then the bundled set.
func loadThemeByName(name string) (*theme.Theme, error) {
	if dir, err := theme.ThemesDir(); err == nil {
		path := filepath.Join(dir, name+".toml")
		if _, statErr := os.Stat(path); statErr == nil {
			return theme.NewTheme(name, path)
		}
	}
	return theme.LoadEmbedded(name)
}

func printStyleSpec(s theme.StyleSpec) {
	printIf := func(label, value string) {
		if value != "" {
			fmt.Printf("  %-18s %s\n", label, value)
		}
	}
	printIf("background", s.Background)
	printIf("foreground", s.Foreground)
	printIf("border", s.Border)
	printIf("border_style", s.BorderStyle)
	printIf("title_color", s.TitleColor)
	if s.TitleBold != nil {
		fmt.Printf("  %-18s %t\n", "title_bold", *s.TitleBold)
	}
	printIf("icon_color", s.IconColor)
	if s.PaddingX != nil {
		fmt.Printf("  %-18s %d\n", "padding_x", *s.PaddingX)
	}
	if s.PaddingY != nil {
		fmt.Printf("  %-18s %d\n", "padding_y", *s.PaddingY)
	}
	printIf("align", s.Align)
	if s.MaxWidthPercent != nil {
		fmt.Printf("  %-18s %.2f\n", "max_width_percent", *s.MaxWidthPercent)
	}
	if s.MaxHeightPercent != nil {
		fmt.Printf("  %-18s %.2f\n", "max_height_percent", *s.MaxHeightPercent)
	}
}
