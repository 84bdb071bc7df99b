// Package docs embeds the user documentation of budgify, one markdown file
// per topic. The readme introduces the others.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the topic shown when none is asked for.
const Readme = "readme"

// Every expands to all topics but the readme.
const Every = "*"

// List returns the topic names, the readme first and the others in
// alphabetical order.
func List() []string {
	topics := []string{Readme}
	entries, _ := fs.ReadDir(files, ".") // sorted by name
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name != Readme {
			topics = append(topics, name)
		}
	}
	return topics
}

// Names returns List as a comma separated string, for usage messages.
func Names() string { return strings.Join(List(), ", ") }

// Read returns the topics concatenated, each followed by an empty line.
func Read(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range expand(topics) {
		content, err := files.ReadFile(topic + ".md")
		if err != nil {
			return "", fmt.Errorf("unknown topic %q, want one of %s", topic, Names())
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func expand(topics []string) []string {
	var expanded []string
	for _, topic := range topics {
		if topic == Every {
			expanded = append(expanded, List()[1:]...)
			continue
		}
		expanded = append(expanded, topic)
	}
	return expanded
}
