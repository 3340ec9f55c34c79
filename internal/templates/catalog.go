// Package templates holds the base templates each theme fills. Built-in markup
// is embedded; an optional directory of <name>.tex files overrides it and is
// reloaded when it changes.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"resume-builder/internal/domain"
)

//go:embed *.tex
var builtinFS embed.FS

var ErrTemplateNotFound = domain.ErrTemplateNotFound

type meta struct {
	display string
	tier    domain.Tier
}

var builtins = map[string]meta{
	"classic":   {"Classic", domain.TierFree},
	"minimal":   {"Minimal", domain.TierFree},
	"compact":   {"Compact", domain.TierFree},
	"modern":    {"Modern", domain.TierPro},
	"academic":  {"Academic CV", domain.TierPro},
	"executive": {"Executive", domain.TierPremium},
	"elegant":   {"Elegant", domain.TierPremium},
}

// Catalog resolves template names to base markup. Safe for concurrent use.
type Catalog struct {
	dir string

	mu        sync.RWMutex
	templates map[string]domain.ResumeTemplate
}

// New loads the embedded templates, then any overrides in dir. An empty dir
// disables overrides.
func New(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rebuilds the catalog from the embedded files and the override dir.
// On error the previous catalog stays in place.
func (c *Catalog) Reload() error {
	next := make(map[string]domain.ResumeTemplate, len(builtins))
	for name, m := range builtins {
		markup, err := builtinFS.ReadFile(name + ".tex")
		if err != nil {
			return fmt.Errorf("read builtin %s: %w", name, err)
		}
		next[name] = domain.ResumeTemplate{
			Name:        name,
			DisplayName: m.display,
			Markup:      string(markup),
			MinTier:     m.tier,
		}
	}

	if c.dir != "" {
		entries, err := os.ReadDir(c.dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read override dir: %w", err)
		}
		for _, e := range entries {
			name, ok := overrideName(e.Name())
			if e.IsDir() || !ok {
				continue
			}
			tpl, known := next[name]
			if !known {
				slog.Warn("ignoring override without a theme", "file", e.Name())
				continue
			}
			markup, err := os.ReadFile(filepath.Join(c.dir, e.Name()))
			if err != nil {
				return fmt.Errorf("read override %s: %w", e.Name(), err)
			}
			tpl.Markup = string(markup)
			next[name] = tpl
		}
	}

	c.mu.Lock()
	c.templates = next
	c.mu.Unlock()
	return nil
}

func overrideName(file string) (string, bool) {
	if filepath.Ext(file) != ".tex" {
		return "", false
	}
	return strings.ToLower(strings.TrimSuffix(file, ".tex")), true
}

// Get returns the template registered under name (case-insensitive).
func (c *Catalog) Get(name string) (domain.ResumeTemplate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.templates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.ResumeTemplate{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return tpl, nil
}

// List returns every template sorted by tier then name.
func (c *Catalog) List() []domain.ResumeTemplate {
	c.mu.RLock()
	out := make([]domain.ResumeTemplate, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].MinTier != out[j].MinTier {
			return out[i].MinTier < out[j].MinTier
		}
		return out[i].Name < out[j].Name
	})
	return out
}
