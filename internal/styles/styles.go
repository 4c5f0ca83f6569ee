// Package styles holds the utility-CSS build configuration as an explicit
// struct instead of ambient global state, and renders it to the config file
// the external CSS tool consumes.
package styles

import (
	"fmt"
	"io"
	"strings"
)

// Strategy selects how dark-mode variants are generated.
type Strategy string

const (
	// StrategyDisabled turns dark-mode variants off entirely.
	StrategyDisabled Strategy = "disabled"
	// StrategyMedia keys dark mode off the prefers-color-scheme media query.
	StrategyMedia Strategy = "media"
	// StrategyClass keys dark mode off a class on the root element.
	StrategyClass Strategy = "class"
)

// Validate rejects strategies outside the recognized set.
func (s Strategy) Validate() error {
	switch s {
	case StrategyDisabled, StrategyMedia, StrategyClass:
		return nil
	}
	return fmt.Errorf("unknown dark-mode strategy %q", string(s))
}

// Config is the full styling surface: which files are scanned for class
// usage, the dark-mode strategy, and whether the default style reset is
// applied.
type Config struct {
	ContentGlobs []string
	DarkMode     Strategy
	ResetStyles  bool
}

// Default scans the generated HTML with dark mode and the reset disabled.
func Default() Config {
	return Config{
		ContentGlobs: []string{"./public/**/*.html"},
		DarkMode:     StrategyDisabled,
		ResetStyles:  false,
	}
}

// Validate checks the config before rendering.
func (c Config) Validate() error {
	if len(c.ContentGlobs) == 0 {
		return fmt.Errorf("at least one content glob is required")
	}
	if err := c.DarkMode.Validate(); err != nil {
		return err
	}
	return nil
}

// Render writes the CSS tool's config file. Output is deterministic for a
// given config.
func (c Config) Render(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("render styles config: %w", err)
	}

	globs := make([]string, len(c.ContentGlobs))
	for i, glob := range c.ContentGlobs {
		globs[i] = fmt.Sprintf("%q", glob)
	}

	darkMode := "false"
	if c.DarkMode != StrategyDisabled {
		darkMode = fmt.Sprintf("%q", string(c.DarkMode))
	}

	var b strings.Builder
	b.WriteString("/** Generated by freshly build. Do not edit. */\n")
	b.WriteString("module.exports = {\n")
	fmt.Fprintf(&b, "  content: [%s],\n", strings.Join(globs, ", "))
	fmt.Fprintf(&b, "  darkMode: %s,\n", darkMode)
	if !c.ResetStyles {
		b.WriteString("  corePlugins: {\n    preflight: false,\n  },\n")
	}
	b.WriteString("};\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render styles config: %w", err)
	}
	return nil
}
