// SPDX-License-Identifier: MIT

// Package ingest reads comparison batches from YAML or JSON files and turns
// them into pipeline jobs.
//
// File layout (JSON is accepted as well, being valid YAML):
//
//	runs:
//	  - name: assignment-1
//	    comparisons:
//	      - {first: alice, second: bob, similarity: 0.82, max_similarity: 0.91}
//
// Inside one run, submissions are interned by name: every occurrence of
// "alice" refers to the same *comparison.Submission. Runs never share
// submissions. max_similarity defaults to similarity when omitted.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simcluster/comparison"
	"github.com/katalvlaran/simcluster/pipeline"
)

// ErrInvalidInput wraps every structural problem of an input file.
var ErrInvalidInput = errors.New("ingest: invalid input")

type fileRecord struct {
	Runs []runRecord `yaml:"runs" validate:"required,min=1,dive"`
}

type runRecord struct {
	Name        string             `yaml:"name" validate:"required"`
	Comparisons []comparisonRecord `yaml:"comparisons" validate:"dive"`
}

type comparisonRecord struct {
	First         string   `yaml:"first" validate:"required"`
	Second        string   `yaml:"second" validate:"required"`
	Similarity    float64  `yaml:"similarity" validate:"gte=0,lte=1"`
	MaxSimilarity *float64 `yaml:"max_similarity" validate:"omitempty,gte=0,lte=1"`
}

var validate = validator.New()

// Load reads and decodes the file at path.
func Load(path string) ([]pipeline.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	jobs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return jobs, nil
}

// Read decodes one document from r into jobs, in file order.
func Read(r io.Reader) ([]pipeline.Job, error) {
	var rec fileRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rec.trim()
	if err := validate.Struct(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seen := make(map[string]bool, len(rec.Runs))
	jobs := make([]pipeline.Job, 0, len(rec.Runs))
	for _, run := range rec.Runs {
		if seen[run.Name] {
			return nil, fmt.Errorf("%w: duplicate run name %q", ErrInvalidInput, run.Name)
		}
		seen[run.Name] = true
		jobs = append(jobs, toJob(run))
	}

	return jobs, nil
}

// trim strips surrounding blanks from every name so that "required"
// rejects blank names and interning sees the canonical form.
func (f *fileRecord) trim() {
	for i := range f.Runs {
		run := &f.Runs[i]
		run.Name = strings.TrimSpace(run.Name)
		for j := range run.Comparisons {
			c := &run.Comparisons[j]
			c.First = strings.TrimSpace(c.First)
			c.Second = strings.TrimSpace(c.Second)
		}
	}
}

// toJob interns submissions by name and converts every comparison record.
func toJob(run runRecord) pipeline.Job {
	subs := make(map[string]*comparison.Submission)
	intern := func(name string) *comparison.Submission {
		s, ok := subs[name]
		if !ok {
			s = &comparison.Submission{Name: name}
			subs[name] = s
		}
		return s
	}

	comps := make([]*comparison.Comparison, 0, len(run.Comparisons))
	for _, c := range run.Comparisons {
		maxSim := c.Similarity
		if c.MaxSimilarity != nil {
			maxSim = *c.MaxSimilarity
		}
		comps = append(comps, &comparison.Comparison{
			First:         intern(c.First),
			Second:        intern(c.Second),
			Similarity:    c.Similarity,
			MaxSimilarity: maxSim,
		})
	}

	return pipeline.Job{Name: run.Name, Comparisons: comps}
}
