// Command render turns a résumé file into LaTeX markup without the server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/templates"
	infra "resume-builder/pkg/infrastructure"

	"github.com/goccy/go-yaml"
	flag "github.com/spf13/pflag"
)

type options struct {
	template  string
	in        string
	out       string
	pdf       string
	engineURL string
	overrides string
	list      bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringVarP(&o.template, "template", "t", "classic", "template name")
	fs.StringVarP(&o.in, "in", "i", "", "résumé file (.yaml, .yml or .json)")
	fs.StringVarP(&o.out, "out", "o", "", "write markup here instead of stdout")
	fs.StringVar(&o.pdf, "pdf", "", "also compile to this PDF path")
	fs.StringVar(&o.engineURL, "engine-url", os.Getenv("COMPILER_ENGINE_URL"), "TeX engine page used by --pdf")
	fs.StringVar(&o.overrides, "templates-dir", "", "directory with template overrides")
	fs.BoolVarP(&o.list, "list", "l", false, "list templates and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if !o.list && o.in == "" {
		return options{}, errors.New("--in is required")
	}
	if o.pdf != "" && o.engineURL == "" {
		return options{}, errors.New("--pdf needs --engine-url")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	catalog, err := templates.New(o.overrides)
	if err != nil {
		return err
	}
	if o.list {
		for _, t := range catalog.List() {
			fmt.Fprintf(stdout, "%-10s %-8s %s\n", t.Name, t.MinTier, t.DisplayName)
		}
		return nil
	}

	values, err := readValues(o.in)
	if err != nil {
		return err
	}
	tpl, err := catalog.Get(o.template)
	if err != nil {
		return err
	}
	markup := render.Generate(tpl.Name, tpl.Markup, values)
	if markup == "" {
		return fmt.Errorf("template %s produced no markup", tpl.Name)
	}

	if o.out == "" {
		_, err = io.WriteString(stdout, markup)
	} else {
		err = os.WriteFile(o.out, []byte(markup), 0o644)
	}
	if err != nil {
		return err
	}

	if o.pdf != "" {
		pdf, err := infra.NewChromedpCompiler(o.engineURL, os.Getenv("CHROME_PATH"), 2*time.Minute).Compile(ctx, markup)
		if err != nil {
			return err
		}
		return os.WriteFile(o.pdf, pdf, 0o644)
	}
	return nil
}

// readValues decodes YAML or JSON by extension and validates the result.
func readValues(path string) (model.ResumeValues, error) {
	var v model.ResumeValues
	data, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
	default:
		return v, fmt.Errorf("unsupported input %s", path)
	}
	if err != nil {
		return v, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := model.Validate(v); err != nil {
		return v, err
	}
	return v, nil
}
