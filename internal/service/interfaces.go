// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the mock backend: login with
// JWT issuing and an in-memory store of schemaless document collections.
package service

import (
	"context"

	"github.com/MKhiriev/go-rest-resource/models"
)

// AuthService checks credentials and issues or verifies access tokens.
type AuthService interface {
	// Login verifies credentials and returns a freshly signed token.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ParseToken verifies a signed token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CollectionService stores documents grouped by collection name.
//
// Listings preserve insertion order. Unknown collections behave as empty.
type CollectionService interface {
	List(ctx context.Context, collection string, page models.Page) ([]models.Document, error)
	Search(ctx context.Context, collection string, filter models.Filter, page models.Page) ([]models.Document, error)
	Count(ctx context.Context, collection string, filter models.Filter) (int, error)

	Get(ctx context.Context, collection, id string) (models.Document, error)
	Create(ctx context.Context, collection string, doc models.Document) (models.Document, error)
	Update(ctx context.Context, collection, id string, doc models.Document) (models.Document, error)
	Delete(ctx context.Context, collection, id string) (models.Document, error)

	// Protected reports whether the collection requires an access token.
	Protected(collection string) bool
}
