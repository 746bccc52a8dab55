// SPDX-License-Identifier: MIT

// Package graphfile loads directed, weighted graph definitions from YAML,
// JSON or HCL files into a core.Graph.
//
// YAML / JSON:
//
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2.5}
//
// HCL:
//
//	nodes = ["A", "B", "C"]
//	edge {
//	  from   = "A"
//	  to     = "B"
//	  weight = 1
//	}
//
// Nodes only need listing when they have no edges; edge endpoints are
// created on demand. Listed nodes keep their order in the resulting graph.
package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors for graph file handling.
var (
	// ErrUnsupportedFormat indicates a file extension or format name that no decoder handles.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported format")

	// ErrEmptyNodeID indicates a node or edge endpoint given as the empty string.
	ErrEmptyNodeID = errors.New("graphfile: empty node id")
)

// Format names a graph file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Document is the decoded, format-independent content of a graph file.
type Document struct {
	Nodes []string `yaml:"nodes" json:"nodes"`
	Edges []Edge   `yaml:"edges" json:"edges"`
}

// Edge is one directed edge of a Document.
type Edge struct {
	From   string  `yaml:"from" json:"from" hcl:"from"`
	To     string  `yaml:"to" json:"to" hcl:"to"`
	Weight float64 `yaml:"weight" json:"weight" hcl:"weight"`
}

// hclDocument mirrors Document for gohcl, where edges are repeated blocks.
type hclDocument struct {
	Nodes []string `hcl:"nodes,optional"`
	Edges []Edge   `hcl:"edge,block"`
}

// FormatFromPath detects the format by file extension.
// Supported extensions: .yaml, .yml, .json, .hcl
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads and decodes the graph file at path, auto-detecting format by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	return decode(data, format, path)
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	return decode(data, format, "graph."+string(format))
}

func decode(data []byte, format Format, name string) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatHCL:
		file, diags := hclparse.NewParser().ParseHCL(data, name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse hcl %s: %w", name, diags)
		}
		var parsed hclDocument
		if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("decode hcl %s: %w", name, diags)
		}
		doc = Document{Nodes: parsed.Nodes, Edges: parsed.Edges}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks that every node and edge endpoint is non-empty.
func (d *Document) Validate() error {
	for i, n := range d.Nodes {
		if n == "" {
			return fmt.Errorf("%w: nodes[%d]", ErrEmptyNodeID, i)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d]", ErrEmptyNodeID, i)
		}
	}

	return nil
}

// Graph builds a new core.Graph from the document: listed nodes first, then
// edges in file order. Graph options (loops, multi-edges) are passed through;
// constraint violations surface as the wrapped core sentinel.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[string, float64], error) {
	opts = append([]core.GraphOption{core.WithCapacity(len(d.Nodes))}, opts...)
	g := core.NewGraph[string, float64](opts...)
	for _, n := range d.Nodes {
		g.AddNode(n)
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph converts g into a Document listing every node and edge.
func FromGraph(g *core.Graph[string, float64]) *Document {
	doc := &Document{Nodes: g.Nodes()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// YAML encodes the document in the format Load reads back from .yaml files.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
