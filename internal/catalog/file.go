package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

// FileSource reads postings from a YAML document of the form
//
//	jobs:
//	  - id: 5
//	    title: ...
type FileSource struct {
	Path string
}

type fileDocument struct {
	Jobs []yaml.Node `yaml:"jobs"`
}

func (f FileSource) Name() string { return "file:" + f.Path }

func (f FileSource) Load(ctx context.Context) ([]models.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	jobs := make([]models.Job, 0, len(doc.Jobs))
	for i := range doc.Jobs {
		node := &doc.Jobs[i]
		if !hasKey(node, "id") {
			return nil, fmt.Errorf("job at line %d has no id", node.Line)
		}
		var job models.Job
		if err := node.Decode(&job); err != nil {
			return nil, fmt.Errorf("parsing job at line %d: %w", node.Line, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
