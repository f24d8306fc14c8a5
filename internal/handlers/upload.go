// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"regsite/internal/storage"
)

// maxUploadSize caps uploaded files at 50 MiB.
const maxUploadSize = 50 << 20

// Upload stores a multipart file in object storage and returns its
// public URL. The file arrives in the "file" form field; an optional
// "folder" field groups objects in the bucket.
func (api *API) Upload(w http.ResponseWriter, r *http.Request) {
	if api.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusBadRequest, "File exceeds the 50 MB upload limit")
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedContentType(contentType) {
		respondError(w, http.StatusBadRequest, "File type not allowed")
		return
	}

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	result, err := api.storageClient.Upload(r.Context(), folder, header.Filename, contentType, file, header.Size)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, result)
}
