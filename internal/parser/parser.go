// Package parser splits the YAML frontmatter of a daily log from its body.
package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the frontmatter block written at the top of every daily log.
type Meta struct {
	Type string `yaml:"type"`
	Date string `yaml:"date"`
}

// Result holds the output of parsing a daily log.
type Result struct {
	Meta           Meta
	HasFrontmatter bool
	Body           string
}

// Parse extracts the frontmatter and the body from raw Markdown bytes.
func Parse(data []byte) *Result {
	meta, body, ok := splitFrontmatter(data)
	return &Result{Meta: meta, HasFrontmatter: ok, Body: body}
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (Meta, string, bool) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return Meta{}, string(data), false
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter: treat everything as body.
		return Meta{}, string(data), false
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var meta Meta
	if err := yaml.Unmarshal(yamlBlock, &meta); err != nil {
		return Meta{}, string(data), false
	}
	return meta, body, true
}
