// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /version with the configured APP_VERSION as
// plain text. It never requires authentication.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
