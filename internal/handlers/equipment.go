package handlers

import (
	"net/http"

	"github.com/assetledger/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	equipmentIDParam     = "equipmentID"
	equipmentNotFoundMsg = "Equipment not found"
)

// EquipmentHandler provides HTTP handlers for equipment records.
type EquipmentHandler struct {
	equipmentService *services.EquipmentService
	logger           *zap.Logger
}

func NewEquipmentHandler(equipmentService *services.EquipmentService, logger *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

// EquipmentRouter registers equipment routes on the given router.
func EquipmentRouter(r chi.Router, equipmentService *services.EquipmentService, logger *zap.Logger) {
	handler := NewEquipmentHandler(equipmentService, logger)

	r.Get("/", handler.ListEquipment)
	r.Post("/", handler.CreateEquipment)
	r.Route("/{"+equipmentIDParam+":[0-9]+}", func(r chi.Router) {
		r.Get("/", handler.GetEquipment)
		r.Patch("/", handler.UpdateEquipment)
		r.Delete("/", handler.DeleteEquipment)
	})
}

func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipmentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "failed to list equipment")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, equipmentIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, equipmentNotFoundMsg)
		return
	}

	item, err := h.equipmentService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "failed to fetch equipment")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := parseEquipment(fields)
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "invalid equipment")
		return
	}

	created, err := h.equipmentService.Create(r.Context(), item)
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "failed to create equipment")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := parseEquipment(fields)
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "invalid equipment")
		return
	}

	id, ok := parseID(r, equipmentIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, equipmentNotFoundMsg)
		return
	}
	item.ID = id

	updated, err := h.equipmentService.Update(r.Context(), item)
	if err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "failed to update equipment")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EquipmentHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, equipmentIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, equipmentNotFoundMsg)
		return
	}

	if err := h.equipmentService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err, equipmentNotFoundMsg, "failed to delete equipment")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Equipment deleted"})
}
