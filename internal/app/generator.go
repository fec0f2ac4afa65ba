package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/configdoc/internal/config"
	"github.com/quantmind-br/configdoc/internal/git"
	"github.com/quantmind-br/configdoc/internal/manifest"
	"github.com/quantmind-br/configdoc/internal/output"
	"github.com/quantmind-br/configdoc/internal/table"
	"github.com/quantmind-br/configdoc/internal/utils"
)

//go:generate mockgen -source=generator.go -destination=mocks_test.go -package=app
//go:generate mockgen -destination=mock_git_test.go -package=app github.com/quantmind-br/configdoc/internal/git Client

// ManifestLoader parses a manifest file into a value tree
type ManifestLoader interface {
	Load(path string) (*manifest.Value, error)
}

// TableRenderer turns properties into a markdown table
type TableRenderer interface {
	Render(props []manifest.Property) (string, error)
}

// DocumentUpdater rewrites a document through a transform
type DocumentUpdater interface {
	Update(path string, transform func(string) (string, error)) (*output.Result, error)
}

// Generator runs the manifest to document pipeline
type Generator struct {
	config   *config.Config
	logger   *utils.Logger
	workDir  string
	loader   ManifestLoader
	renderer TableRenderer
	updater  DocumentUpdater
	git      git.Client
}

// GeneratorOptions contains options for creating a generator
type GeneratorOptions struct {
	Config  *config.Config
	Verbose bool
	DryRun  bool
	Check   bool
	Color   bool
	DiffOut io.Writer

	// WorkDir is the base for relative paths, the process working directory when empty
	WorkDir string

	// Optional collaborators, real implementations are used when nil
	Logger   *utils.Logger
	Loader   ManifestLoader
	Renderer TableRenderer
	Updater  DocumentUpdater
	Git      git.Client
}

// NewGenerator creates a new generator with the given configuration
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	renderer := opts.Renderer
	if renderer == nil {
		style, err := table.ParseStyle(cfg.Render.Style)
		if err != nil {
			return nil, err
		}
		renderer = table.NewFormatter(table.Options{Style: style})
	}

	loader := opts.Loader
	if loader == nil {
		loader = manifest.NewLoader()
	}

	updater := opts.Updater
	if updater == nil {
		updater = output.NewWriter(output.WriterOptions{
			DryRun:  opts.DryRun,
			Check:   opts.Check,
			Color:   opts.Color,
			DiffOut: opts.DiffOut,
		})
	}

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewClient()
	}

	return &Generator{
		config:   cfg,
		logger:   logger.WithComponent("generator"),
		workDir:  opts.WorkDir,
		loader:   loader,
		renderer: renderer,
		updater:  updater,
		git:      gitClient,
	}, nil
}

// Run loads the manifest, renders the property table and splices it into
// the document. The document is left untouched when any step fails.
func (g *Generator) Run(ctx context.Context) (*output.Result, error) {
	startTime := time.Now()

	manifestPath, documentPath, err := g.resolvePaths()
	if err != nil {
		return nil, err
	}

	g.logger.Info().
		Str("manifest", manifestPath).
		Str("document", documentPath).
		Msg("Generating configuration table")

	root, err := g.loader.Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	props, err := manifest.Properties(root, g.config.Manifest.PropertiesPath...)
	if err != nil {
		return nil, fmt.Errorf("failed to extract properties from %s: %w", manifestPath, err)
	}
	g.logger.Debug().
		Int("properties", len(props)).
		Strs("path", g.config.Manifest.PropertiesPath).
		Msg("Extracted configuration properties")

	tbl, err := g.renderer.Render(props)
	if err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}

	if err := ctx.Err(); err != nil {
		g.logger.Warn().Msg("Generation cancelled")
		return nil, err
	}

	markers := output.Markers{
		Start: g.config.Document.StartMarker,
		End:   g.config.Document.EndMarker,
	}
	res, err := g.updater.Update(documentPath, func(content string) (string, error) {
		return output.Splice(content, markers, tbl)
	})
	if err != nil {
		return res, fmt.Errorf("failed to update document: %w", err)
	}

	event := g.logger.WithFile(res.Path).Info().
		Int("rows", len(props)).
		Dur("duration", time.Since(startTime))
	switch {
	case res.Written:
		event.Msg("Configuration table updated")
	case res.Changed:
		event.Msg("Configuration table would change")
	default:
		event.Msg("Configuration table already up to date")
	}

	return res, nil
}

// resolvePaths returns the manifest and document paths, anchored at the git
// worktree root when configured
func (g *Generator) resolvePaths() (string, string, error) {
	base := g.workDir
	if g.config.GitRoot {
		dir := base
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", "", fmt.Errorf("failed to get working directory: %w", err)
			}
			dir = wd
		}

		root, err := g.git.WorktreeRoot(dir)
		if err != nil {
			return "", "", fmt.Errorf("failed to locate git worktree: %w", err)
		}
		g.logger.Debug().Str("root", root).Msg("Resolving paths from git worktree root")
		base = root
	}

	return utils.ResolvePath(base, g.config.Manifest.Path),
		utils.ResolvePath(base, g.config.Document.Path), nil
}
