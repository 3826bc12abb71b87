package passage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/typist/internal/model"
)

type yamlFile struct {
	Passages []model.Passage `yaml:"passages"`
}

// LoadFile reads passages from a text or YAML file, chosen by extension.
func LoadFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only passage file.
			_ = cerr
		}
	}()

	var passages []model.Passage
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		passages, err = ParseYAML(file)
	default:
		passages, err = ParseText(file)
	}
	if err != nil {
		return nil, err
	}
	set, err := NewSet(passages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseText splits a plain-text document into passages separated by blank lines.
// Lines starting with '#' are comments.
func ParseText(r io.Reader) ([]model.Passage, error) {
	var passages []model.Passage
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		passages = append(passages, model.Passage{Text: strings.Join(current, " ")})
		current = current[:0]
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return passages, nil
}

// ParseYAML decodes a document of the form `passages: [{title, text}]`.
func ParseYAML(r io.Reader) ([]model.Passage, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode passages: %w", err)
	}
	return doc.Passages, nil
}
