// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/models"
)

// IDGenerator produces identifiers for documents created without one.
type IDGenerator interface {
	Generate() string
}

// collection keeps documents by id together with their insertion order.
type collection struct {
	docs  map[string]models.Document
	order []string
}

func newCollection() *collection {
	return &collection{docs: make(map[string]models.Document)}
}

// collectionService is an in-memory CollectionService guarded by a single
// RWMutex. Documents are cloned on the way in and out.
type collectionService struct {
	mu          sync.RWMutex
	collections map[string]*collection

	protected map[string]struct{}
	ids       IDGenerator

	logger *logger.Logger
}

// NewCollectionService returns an empty in-memory CollectionService. Requests
// to collections named in protected must carry a valid access token.
func NewCollectionService(protected []string, ids IDGenerator, logger *logger.Logger) CollectionService {
	p := make(map[string]struct{}, len(protected))
	for _, name := range protected {
		p[name] = struct{}{}
	}

	return &collectionService{
		collections: make(map[string]*collection),
		protected:   p,
		ids:         ids,
		logger:      logger,
	}
}

func (s *collectionService) Protected(name string) bool {
	_, ok := s.protected[name]
	return ok
}

func (s *collectionService) List(ctx context.Context, name string, page models.Page) ([]models.Document, error) {
	return s.Search(ctx, name, models.Filter{}, page)
}

func (s *collectionService) Search(ctx context.Context, name string, filter models.Filter, page models.Page) ([]models.Document, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}
	if err := validate.Struct(page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.match(name, filter)
	found = paginate(found, page)

	logger.FromContext(ctx).Debug().
		Str("collection", name).
		Int("found", len(found)).
		Msg("documents listed")

	return found, nil
}

func (s *collectionService) Count(ctx context.Context, name string, filter models.Filter) (int, error) {
	if err := validateCollection(name); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.match(name, filter)), nil
}

func (s *collectionService) Get(ctx context.Context, name, id string) (models.Document, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return doc.Clone(), nil
}

// Create stores doc under its "id" property, assigning a generated id when the
// property is missing.
func (s *collectionService) Create(ctx context.Context, name string, doc models.Document) (models.Document, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDataProvided)
	}

	doc = doc.Clone()
	id, ok := doc.ID()
	if !ok {
		id = s.ids.Generate()
		doc[models.DocumentIDField] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = newCollection()
		s.collections[name] = c
	}
	if _, exists := c.docs[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDocumentExists, id)
	}

	c.docs[id] = doc
	c.order = append(c.order, id)

	logger.FromContext(ctx).Debug().Str("collection", name).Str("id", id).Msg("document created")

	return doc.Clone(), nil
}

// Update replaces the stored document. The stored id is kept; a body id
// different from the path id is rejected.
func (s *collectionService) Update(ctx context.Context, name, id string, doc models.Document) (models.Document, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDataProvided)
	}
	if bodyID, ok := doc.ID(); ok && bodyID != id {
		return nil, fmt.Errorf("%w: %s != %s", ErrDocumentIDMismatch, bodyID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	stored, ok := c.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	updated := doc.Clone()
	updated[models.DocumentIDField] = stored[models.DocumentIDField]
	c.docs[id] = updated

	logger.FromContext(ctx).Debug().Str("collection", name).Str("id", id).Msg("document updated")

	return updated.Clone(), nil
}

// Delete removes the document and returns it.
func (s *collectionService) Delete(ctx context.Context, name, id string) (models.Document, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })

	logger.FromContext(ctx).Debug().Str("collection", name).Str("id", id).Msg("document deleted")

	return doc, nil
}

// match returns clones of the documents accepted by filter. Callers hold mu.
func (s *collectionService) match(name string, filter models.Filter) []models.Document {
	c, ok := s.collections[name]
	if !ok {
		return []models.Document{}
	}

	found := make([]models.Document, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if matches(doc, filter) {
			found = append(found, doc.Clone())
		}
	}

	return found
}

func matches(doc models.Document, filter models.Filter) bool {
	if filter.Empty() {
		return true
	}

	for field, want := range filter.Fields {
		v, ok := doc[field]
		if !ok || models.FormatValue(v) != want {
			return false
		}
	}

	if filter.Query != "" && !containsText(doc, filter.Query) {
		return false
	}

	if len(filter.Keywords) > 0 {
		return slices.ContainsFunc(filter.Keywords, func(k string) bool {
			return containsText(doc, k)
		})
	}

	return true
}

// containsText reports whether any string property contains text, ignoring case.
func containsText(doc models.Document, text string) bool {
	text = strings.ToLower(text)
	for _, v := range doc {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), text) {
			return true
		}
	}
	return false
}

func paginate(docs []models.Document, page models.Page) []models.Document {
	if page.Limit <= 0 {
		return docs
	}

	number := max(page.PageNumber, 1)
	start := (number - 1) * page.Limit
	if start >= len(docs) {
		return []models.Document{}
	}

	return docs[start:min(start+page.Limit, len(docs))]
}

func validateCollection(name string) error {
	if name == "" || strings.ContainsAny(name, "/?#") {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}
