package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/render"
)

// layoutCommand creates the layout command for computing document layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		format     string
		configPath string
		noCache    bool
		zoom       int
		spreads    bool
		horizontal bool
	)

	cmd := &cobra.Command{
		Use:   "layout [manifest.json|url]",
		Short: "Compute page-group geometry from a document manifest",
		Long: `Compute page-group geometry from a document manifest.

The layout command takes a manifest (a local JSON file or an HTTP URL) and
computes where every page group sits on the canvas. The output is a
layout.json file, or an SVG wireframe with --format svg.

A viewing configuration can be loaded from a TOML file with --config;
flags given on the command line override the file.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := layout.Config{}
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("zoom") {
				cfg.Zoom = zoom
			}
			if cmd.Flags().Changed("spreads") {
				cfg.Spreads = spreads
			}
			if cmd.Flags().Changed("horizontal") && horizontal {
				cfg.Orientation = layout.Horizontal
			}
			return c.runLayout(cmd.Context(), args[0], cfg, format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.<format>, \"-\" for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatJSON, "output format: json (default), svg")
	cmd.Flags().StringVar(&configPath, "config", "", "viewing configuration TOML file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().IntVarP(&zoom, "zoom", "z", 0, "zoom level to lay out")
	cmd.Flags().BoolVar(&spreads, "spreads", false, "pair pages into facing spreads (book mode)")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "scroll left to right instead of top to bottom")

	return cmd
}

// runLayout loads the manifest, computes the layout (cache permitting), and
// writes the output.
func (c *CLI) runLayout(ctx context.Context, input string, cfg layout.Config, format, output string, noCache bool) error {
	if err := errors.ValidateOutputFormat(format); err != nil {
		return err
	}

	m, err := loadManifest(ctx, input)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	doc, cacheHit, err := computeCached(ctx, store, m, cfg)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	var data []byte
	switch format {
	case render.FormatSVG:
		data, err = render.RenderSVG(doc, m, cfg)
	default:
		data, err = render.RenderJSON(doc)
	}
	if err != nil {
		return fmt.Errorf("render layout: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, format)
	}
	if outputPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(m.PageCount(), len(doc.Groups), cacheHit)
	printNewline()
	printNextStep("Preview", "folio preview "+input)

	return nil
}

// loadManifest reads a manifest from a local path or fetches it over HTTP.
func loadManifest(ctx context.Context, input string) (*manifest.Manifest, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		log := loggerFromContext(ctx)
		prog := newProgress(log)
		m, err := manifest.Fetch(ctx, input)
		if err != nil {
			return nil, err
		}
		prog.done(fmt.Sprintf("Fetched manifest with %d pages", m.PageCount()))
		return m, nil
	}
	return manifest.ImportJSON(input)
}

// computeCached computes the layout, consulting the cache first. The cache
// key covers both the manifest content and the full configuration.
func computeCached(ctx context.Context, store cache.Cache, m *manifest.Manifest, cfg layout.Config) (*layout.Document, bool, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, false, err
	}
	key := cache.NewDefaultKeyer().LayoutKey(cache.Hash(raw), cfg)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if doc, err := render.ParseJSON(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return doc, true, nil
		}
		// Unreadable entry: drop it and recompute.
		_ = store.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	orientation := string(cfg.Orientation)
	observability.Layout().OnLayoutStart(ctx, orientation, m.PageCount())
	start := time.Now()
	doc, err := layout.Compute(m, cfg)
	observability.Layout().OnLayoutComplete(ctx, orientation, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if data, err := render.RenderJSON(doc); err == nil {
		_ = store.Set(ctx, key, data, 0)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	return doc, false, nil
}

// defaultOutputPath derives the output file name from the input. URL inputs
// fall back to a name in the working directory.
func defaultOutputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		base = "manifest"
	}
	return base + ".layout." + format
}
