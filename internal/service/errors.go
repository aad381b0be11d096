// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUnknownLogin        = errors.New("unknown login")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidCollection  = errors.New("invalid collection name")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrDocumentExists     = errors.New("document with this id already exists")
	ErrDocumentIDMismatch = errors.New("document id does not match the path")
)
