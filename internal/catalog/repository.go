/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package catalog resolves resource types to CloudFormation templates in a
// template catalogue: a directory tree with one subdirectory per resource
// type (s3, ec2, ...), each holding a template file. How the catalogue
// arrives on disk (git clone, sync, plain checkout) is the surrounding
// system's concern.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Repository provides read access to the template catalogue. The store
// only ever lists and reads; nothing here mutates the catalogue.
type Repository interface {
	// ListResourceTypes returns the available resource type names, sorted.
	ListResourceTypes() ([]string, error)

	// ListFiles returns the file names in a resource type directory in
	// iteration order. It returns ErrResourceTypeNotFound when the
	// directory does not exist.
	ListFiles(resourceType string) ([]string, error)

	// ReadFile returns the content of one file in a resource type
	// directory.
	ReadFile(resourceType, name string) ([]byte, error)
}

// DirRepository is a Repository backed by a local directory, typically a
// checkout of the template repository.
type DirRepository struct {
	root string
}

// NewDirRepository creates a repository rooted at the given directory.
func NewDirRepository(root string) *DirRepository {
	return &DirRepository{root: root}
}

// Root returns the catalogue root directory.
func (r *DirRepository) Root() string {
	return r.root
}

// ListResourceTypes returns the names of all non-hidden subdirectories of
// the catalogue root, sorted.
func (r *DirRepository) ListResourceTypes() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue root %s: %w", r.root, err)
	}

	resources := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			resources = append(resources, entry.Name())
		}
	}
	sort.Strings(resources)
	return resources, nil
}

// ListFiles returns the regular file names in a resource type directory.
func (r *DirRepository) ListFiles(resourceType string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, resourceType))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resource type %q: %w", resourceType, ErrResourceTypeNotFound)
		}
		return nil, fmt.Errorf("failed to read resource type directory %s: %w", resourceType, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// ReadFile returns the content of a file inside a resource type directory.
func (r *DirRepository) ReadFile(resourceType, name string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(r.root, resourceType, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s/%s: %w", resourceType, name, err)
	}
	return content, nil
}

var _ Repository = (*DirRepository)(nil)
