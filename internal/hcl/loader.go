package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/config"
	"github.com/jo/hyperwood/internal/ctxlog"
	"github.com/jo/hyperwood/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a single settings file.
type fileRoot struct {
	LogLevel  *string       `hcl:"log_level,optional"`
	LogFormat *string       `hcl:"log_format,optional"`
	Listen    *string       `hcl:"listen,optional"`
	Stocks    []*stockBlock `hcl:"stock,block"`
}

// stockBlock is a `stock "<name>" { ... }` block. Omitted axes default to 1.
type stockBlock struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	X           *float64 `hcl:"x,optional"`
	Y           *float64 `hcl:"y,optional"`
	Z           *float64 `hcl:"z,optional"`
}

// Load parses every .hcl file under paths. Scalar settings from later files
// override earlier ones; stock names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path_count", len(paths))

	settings := config.NewSettings()

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.LogLevel != nil {
			settings.LogLevel = *root.LogLevel
		}
		if root.LogFormat != nil {
			settings.LogFormat = *root.LogFormat
		}
		if root.Listen != nil {
			settings.Listen = *root.Listen
		}
		for _, block := range root.Stocks {
			if err := settings.AddStock(translateStock(block)); err != nil {
				return nil, fmt.Errorf("invalid settings file %s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL settings loading complete.", "files", len(files), "stocks", len(settings.Stocks))
	return settings, nil
}

func translateStock(b *stockBlock) *config.Stock {
	variant := hef.DefaultVariant()
	if b.X != nil {
		variant.X = *b.X
	}
	if b.Y != nil {
		variant.Y = *b.Y
	}
	if b.Z != nil {
		variant.Z = *b.Z
	}
	return &config.Stock{
		Name:        b.Name,
		Description: b.Description,
		Variant:     variant,
	}
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found, each at most once.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range files {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
