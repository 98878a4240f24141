/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/stackcat/stackcat/internal/template"
)

var (
	// ErrResourceTypeNotFound indicates the resource type directory does
	// not exist in the catalogue.
	ErrResourceTypeNotFound = errors.New("resource type not found")

	// ErrNoTemplate indicates the resource type directory exists but
	// contains no recognisable template file.
	ErrNoTemplate = errors.New("no CloudFormation template found")
)

// ParseError indicates a template file could not be parsed. The underlying
// syntax error is preserved for Unwrap.
type ParseError struct {
	ResourceType string
	File         string
	Err          error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse template %s/%s: %v", e.ResourceType, e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// conventionalNames are tried first during resolution, in this order.
var conventionalNames = []string{
	"template.yaml",
	"template.yml",
	"cloudformation.yaml",
	"cloudformation.yml",
	"template.json",
	"cloudformation.json",
}

// Store resolves resource types to template files and parses them. Every
// read goes back to the repository; nothing is cached, so a catalogue
// refresh is picked up by the next operation.
type Store struct {
	repo Repository
	tags *template.TagTable
}

// NewStore creates a store reading from the given repository, decoding
// intrinsic tags with the default CloudFormation tag table.
func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		tags: template.DefaultTagTable(),
	}
}

// NewStoreWithTags creates a store using a custom intrinsic tag table.
func NewStoreWithTags(repo Repository, tags *template.TagTable) *Store {
	return &Store{repo: repo, tags: tags}
}

// Repository returns the underlying repository accessor.
func (s *Store) Repository() Repository {
	return s.repo
}

// Resolve finds the template file for a resource type. Conventional names
// win over any other YAML file, which wins over any other JSON file.
func (s *Store) Resolve(resourceType string) (string, error) {
	files, err := s.repo.ListFiles(resourceType)
	if err != nil {
		return "", err
	}

	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	for _, name := range conventionalNames {
		if present[name] {
			log.WithField("resource_type", resourceType).WithField("file", name).
				Debug("resolved conventional template name")
			return name, nil
		}
	}

	for _, name := range files {
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			log.WithField("resource_type", resourceType).WithField("file", name).
				Debug("resolved first YAML template")
			return name, nil
		}
	}

	for _, name := range files {
		if strings.HasSuffix(name, ".json") {
			log.WithField("resource_type", resourceType).WithField("file", name).
				Debug("resolved first JSON template")
			return name, nil
		}
	}

	return "", fmt.Errorf("resource type %q: %w (expected a .yaml, .yml or .json file)", resourceType, ErrNoTemplate)
}

// ReadRaw returns the exact template bytes. The change-set API wants the
// original text, not a reparsed rendering of it.
func (s *Store) ReadRaw(resourceType string) ([]byte, error) {
	name, err := s.Resolve(resourceType)
	if err != nil {
		return nil, err
	}
	return s.repo.ReadFile(resourceType, name)
}

// Read resolves and parses the template for a resource type into a node
// tree, decoding CloudFormation short-form tags.
func (s *Store) Read(resourceType string) (*template.Node, error) {
	name, err := s.Resolve(resourceType)
	if err != nil {
		return nil, err
	}

	content, err := s.repo.ReadFile(resourceType, name)
	if err != nil {
		return nil, err
	}

	doc, err := template.Parse(content, formatOf(name), s.tags)
	if err != nil {
		return nil, &ParseError{ResourceType: resourceType, File: name, Err: err}
	}
	return doc, nil
}

func formatOf(name string) template.Format {
	if strings.HasSuffix(name, ".json") {
		return template.FormatJSON
	}
	return template.FormatYAML
}
