package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dcdn-backend/dcdn/registry"
	"dcdn-backend/dcdn/storage"
	"dcdn-backend/internal/dto"
	"dcdn-backend/internal/metrics"
	"dcdn-backend/internal/models"
	"dcdn-backend/utils/response"
)

type NodeHandler struct {
	registry *registry.Registry
	engine   *storage.Engine
	metrics  *metrics.Metrics
}

func NewNodeHandler(reg *registry.Registry, engine *storage.Engine, m *metrics.Metrics) *NodeHandler {
	return &NodeHandler{
		registry: reg,
		engine:   engine,
		metrics:  m,
	}
}

func (h *NodeHandler) RegisterNode(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Failed to decode request body: %v", err))
		return
	}

	stored, err := h.registry.Register(models.NodeRecord{
		ID:               req.ID,
		Location:         req.Location,
		StorageCapacity:  req.StorageCapacity,
		UsedStorage:      req.UsedStorage,
		UptimePercentage: req.UptimePercentage,
		NodeType:         models.NodeType(req.NodeType),
	})
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.metrics.ActiveNodes.Set(float64(h.registry.Count()))

	response.Success(w, dto.RegisterNodeResponse{ID: stored.ID}, "Node registered")
}

func (h *NodeHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "'id' not present in path")
		return
	}

	if err := h.registry.Heartbeat(id); err != nil {
		response.EngineError(w, err)
		return
	}

	response.Success(w, id, "Heartbeat recorded")
}

func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.registry.List(), "")
}

func (h *NodeHandler) NetworkStats(w http.ResponseWriter, r *http.Request) {
	files, bytes, downloads := h.engine.Stats()

	h.metrics.StoredFiles.Set(float64(files))
	h.metrics.StoredBytes.Set(float64(bytes))
	h.metrics.ActiveNodes.Set(float64(h.registry.Count()))

	response.Success(w, dto.NetworkStatsResponse{
		TotalFiles:        files,
		TotalStorageBytes: bytes,
		TotalDownloads:    downloads,
		ActiveNodes:       uint64(h.registry.Count()),
	}, "")
}
