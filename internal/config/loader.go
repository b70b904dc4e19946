package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/roomwalk/internal/ctxlog"
	"github.com/vk/roomwalk/internal/fsutil"
)

// hclFile is the top-level structure of an expedition file for decoding.
type hclFile struct {
	Expeditions []*hclExpedition `hcl:"expedition,block"`
}

type hclExpedition struct {
	Name    string `hcl:"name,label"`
	Server  string `hcl:"server"`
	Message string `hcl:"message"`
	Timeout string `hcl:"timeout,optional"`

	Renders  []*hclSink `hcl:"render,block"`
	Archives []*hclSink `hcl:"archive,block"`
}

// hclSink keeps the block body undecoded; sink options are free-form and
// differ per type, so they are extracted as attributes afterwards.
type hclSink struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// Load discovers every .hcl file under path (a file or a directory),
// decodes the expedition blocks across all of them, and validates the
// result. Expedition names must be unique across the whole set.
func Load(ctx context.Context, path string) ([]*Expedition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading expeditions.", "path", path)

	files, err := fsutil.FindByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find expedition files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl expedition files found under %q", path)
	}

	parser := hclparse.NewParser()
	var expeditions []*Expedition
	byName := make(map[string]string)

	for _, file := range files {
		parsed, err := loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		for _, e := range parsed {
			if prev, ok := byName[e.Name]; ok {
				return nil, fmt.Errorf("duplicate expedition %q in %s (first defined in %s)", e.Name, file, prev)
			}
			byName[e.Name] = file
			expeditions = append(expeditions, e)
		}
	}

	logger.Debug("Expeditions loaded.", "count", len(expeditions), "files", len(files))
	return expeditions, nil
}

// loadFile parses one HCL file into validated expeditions.
func loadFile(parser *hclparse.Parser, path string) ([]*Expedition, error) {
	hclF, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(hclF.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	expeditions := make([]*Expedition, 0, len(parsed.Expeditions))
	for _, raw := range parsed.Expeditions {
		e, err := translate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		expeditions = append(expeditions, e)
	}
	return expeditions, nil
}

// translate converts a decoded block into the validated model.
func translate(raw *hclExpedition) (*Expedition, error) {
	e := &Expedition{
		Name:    raw.Name,
		Server:  raw.Server,
		Message: raw.Message,
		Timeout: DefaultTimeout,
	}

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("expedition %q: invalid timeout: %w", raw.Name, err)
		}
		e.Timeout = d
	}

	for _, s := range raw.Renders {
		sink, err := translateSink(raw.Name, s)
		if err != nil {
			return nil, err
		}
		e.Renders = append(e.Renders, sink)
	}
	for _, s := range raw.Archives {
		sink, err := translateSink(raw.Name, s)
		if err != nil {
			return nil, err
		}
		e.Archives = append(e.Archives, sink)
	}

	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// translateSink evaluates a sink block's free-form attributes and coerces
// each value to a string.
func translateSink(expedition string, raw *hclSink) (Sink, error) {
	sink := Sink{Type: raw.Type, Options: make(map[string]string)}

	attrs, diags := raw.Body.JustAttributes()
	if diags.HasErrors() {
		return sink, fmt.Errorf("expedition %q: invalid %s block: %w", expedition, raw.Type, diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return sink, fmt.Errorf("expedition %q: failed to evaluate %s option %q: %w", expedition, raw.Type, name, diags)
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return sink, fmt.Errorf("expedition %q: %s option %q is not a string: %w", expedition, raw.Type, name, err)
		}
		if str.IsNull() {
			return sink, fmt.Errorf("expedition %q: %s option %q is null", expedition, raw.Type, name)
		}
		sink.Options[name] = str.AsString()
	}
	return sink, nil
}
