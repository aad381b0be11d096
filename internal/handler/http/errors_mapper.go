// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/service"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAccessToken:  http.StatusUnauthorized,
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUnknownLogin:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidCollection:       http.StatusBadRequest,
	service.ErrDocumentNotFound:        http.StatusNotFound,
	service.ErrDocumentExists:          http.StatusConflict,
	service.ErrDocumentIDMismatch:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors are
// not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
