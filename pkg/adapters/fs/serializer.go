package fs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aretw0/contentlint/pkg/core"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parser splits a document into its metadata header and body.
type Parser interface {
	Parse(r io.Reader) (core.Metadata, string, error)
}

// FrontmatterParser reads Markdown documents with a YAML (---) or TOML (+++) header.
type FrontmatterParser struct{}

// NewFrontmatterParser creates a new front matter parser.
func NewFrontmatterParser() *FrontmatterParser {
	return &FrontmatterParser{}
}

// Parse returns the header attributes and the remaining body.
// Input without an opening delimiter, or whose header is never closed, is all body
// and yields empty metadata.
func (p *FrontmatterParser) Parse(r io.Reader) (core.Metadata, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	meta := make(core.Metadata)

	first, rest, _ := cutLine(data)
	var closers []string
	switch string(first) {
	case "---":
		closers = []string{"---", "..."}
	case "+++":
		closers = []string{"+++"}
	default:
		return meta, string(data), nil
	}

	header, body, ok := splitHeader(rest, closers)
	if !ok {
		return meta, string(data), nil
	}

	if string(first) == "+++" {
		if err := toml.Unmarshal(header, &meta); err != nil {
			return nil, "", fmt.Errorf("failed to parse toml frontmatter: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(header, &meta); err != nil {
			return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
		}
	}

	// An empty YAML header leaves the map nil.
	if meta == nil {
		meta = make(core.Metadata)
	}

	return meta, string(body), nil
}

// splitHeader scans data line by line for one of the closing delimiters.
func splitHeader(data []byte, closers []string) (header, body []byte, ok bool) {
	offset := 0
	rest := data
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		for _, c := range closers {
			if string(line) == c {
				return data[:offset], next, true
			}
		}
		offset += len(rest) - len(next)
		rest = next
	}
	return nil, nil, false
}

// cutLine returns the first line of data without its line ending and the remainder.
func cutLine(data []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(data, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
