// Package theme provides TOML theming for toast styles: bundled
// themes, user theme files with hot reload, and the mapping from theme
// documents to lipgloss styling.
package theme
