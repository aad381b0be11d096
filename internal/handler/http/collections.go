// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/go-chi/chi/v5"
)

// Reserved query parameters. Any other parameter filters by field equality.
const (
	limitParam      = "limit"
	pageNumberParam = "pageNumber"
	queryParam      = "q"
	keywordsParam   = "keywords"
)

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	docs, err := h.services.CollectionService.List(r.Context(), chi.URLParam(r, collectionParam), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, docs, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := pageFromQuery(query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	docs, err := h.services.CollectionService.Search(r.Context(), chi.URLParam(r, collectionParam), filterFromQuery(query), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, docs, http.StatusOK)
}

// count answers with a bare JSON number.
func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	n, err := h.services.CollectionService.Count(r.Context(), chi.URLParam(r, collectionParam), filterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, n, http.StatusOK)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.CollectionService.Get(r.Context(), chi.URLParam(r, collectionParam), chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CollectionService.Create(r.Context(), chi.URLParam(r, collectionParam), doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CollectionService.Update(r.Context(), chi.URLParam(r, collectionParam), chi.URLParam(r, idParam), doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.CollectionService.Delete(r.Context(), chi.URLParam(r, collectionParam), chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, deleted, http.StatusOK)
}

func decodeDocument(r *http.Request) (models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}
	return doc, nil
}

func pageFromQuery(query url.Values) (models.Page, error) {
	var (
		page models.Page
		err  error
	)

	if v := query.Get(limitParam); v != "" {
		if page.Limit, err = strconv.Atoi(v); err != nil {
			return models.Page{}, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, limitParam, v)
		}
	}
	if v := query.Get(pageNumberParam); v != "" {
		if page.PageNumber, err = strconv.Atoi(v); err != nil {
			return models.Page{}, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, pageNumberParam, v)
		}
	}

	return page, nil
}

// filterFromQuery reads q, the comma separated keywords list and field
// filters. Paging parameters are ignored.
func filterFromQuery(query url.Values) models.Filter {
	filter := models.Filter{Query: query.Get(queryParam)}

	for _, raw := range query[keywordsParam] {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				filter.Keywords = append(filter.Keywords, k)
			}
		}
	}

	for key, values := range query {
		switch key {
		case limitParam, pageNumberParam, queryParam, keywordsParam:
			continue
		}
		if len(values) == 0 {
			continue
		}
		if filter.Fields == nil {
			filter.Fields = make(map[string]string)
		}
		filter.Fields[key] = values[0]
	}

	return filter
}
