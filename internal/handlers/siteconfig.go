// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

type heroValues struct {
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
}

type pdfLink struct {
	File  string `json:"file"`
	Title string `json:"title"`
}

type homeConfig struct {
	HeroValues heroValues         `json:"heroValues"`
	PDFs       map[string]pdfLink `json:"pdfs"`
}

// HomeConfig returns the static homepage configuration block. It is
// hardcoded for now; a PageConfig table can replace it if the content
// team needs to edit these without a deploy.
func (api *API) HomeConfig(w http.ResponseWriter, r *http.Request) {
	cfg := homeConfig{
		HeroValues: heroValues{
			Vision:  "Be Africa's leading Regulator.",
			Mission: "Promoting sustainable value creation from Nigeria's Petroleum Resources for shared prosperity.",
		},
		PDFs: map[string]pdfLink{
			"magazine": {
				File:  "/pdfs/Upstream-Gaze-Magazine-Vol.-11.pdf",
				Title: "The Upstream Gaze - Vol. 11",
			},
			"serviceCharter": {
				File:  "/pdfs/2025-NURPC-Integrated-Charter-printed.pdf",
				Title: "NUPRC – Service Charter",
			},
		},
	}
	respondData(w, http.StatusOK, cfg)
}
