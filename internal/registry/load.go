package registry

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

//go:embed sources.hcl
var builtinSources []byte

// sourceBlock is the HCL schema of a `source` block.
type sourceBlock struct {
	City        string `hcl:"city,label"`
	File        string `hcl:"file"`
	DisplayName string `hcl:"display_name,optional"`
}

// document decodes every top-level block a registry file may contain.
type document struct {
	Sources []*sourceBlock `hcl:"source,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// Default returns the built-in registry with file paths rooted at dataDir.
func Default(ctx context.Context, dataDir string) (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(builtinSources, "sources.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse built-in sources: %w", diags)
	}
	sources, err := decode(ctx, file, dataDir)
	if err != nil {
		return nil, err
	}
	return New(sources...)
}

// Load builds a registry from an HCL file, or from every .hcl file under a
// directory, with file paths rooted at dataDir.
func Load(ctx context.Context, path, dataDir string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading data sources.", "path", path, "data_dir", dataDir)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing sources path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk sources directory %s: %w", path, err)
		}
	}

	parser := hclparse.NewParser()
	var sources []Source
	for _, f := range files {
		hclFile, diags := parser.ParseHCLFile(f)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", f, diags)
		}
		decoded, err := decode(ctx, hclFile, dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", f, err)
		}
		sources = append(sources, decoded...)
	}

	logger.Debug("Data sources loaded.", "files", len(files), "sources", len(sources))
	return New(sources...)
}

func decode(ctx context.Context, file *hcl.File, dataDir string) ([]Source, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"data_dir": cty.StringVal(filepath.ToSlash(dataDir)),
		},
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &doc); diags.HasErrors() {
		return nil, diags
	}

	sources := make([]Source, 0, len(doc.Sources))
	for _, b := range doc.Sources {
		sources = append(sources, Source{
			City:        b.City,
			DisplayName: b.DisplayName,
			Path:        filepath.Clean(filepath.FromSlash(b.File)),
		})
		ctxlog.FromContext(ctx).Debug("Registered data source.", "city", b.City, "file", b.File)
	}
	return sources, nil
}
