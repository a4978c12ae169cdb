package handlers

import (
	"encoding/json"
	"net/http"
)

type TablesResponse struct {
	CountTables int  `json:"countTables"`
	Complete    bool `json:"complete"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, complete, err := h.TablesService.SchemaStatus()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TablesResponse{CountTables: count, Complete: complete})
}
