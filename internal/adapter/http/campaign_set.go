package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"campaign-sync/internal/adapter/usecase"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type validationResponse struct {
	Valid  bool                     `json:"valid"`
	Errors []domain.ValidationError `json:"errors"`
}

type jobResponse struct {
	JobID string `json:"jobId"`
}

// handleSync runs a synchronous sync of the set and returns the SyncResult.
// Partial failures are part of a 200 response. A cancelled run answers 503
// with the partial result.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := h.deps.Sync.SyncCampaignSet(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrCampaignSetNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrSyncCancelled):
		h.writeJSON(w, http.StatusServiceUnavailable, res)
	case err != nil:
		h.logger.Error("sync error", slog.String("campaign_set_id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, res)
	}
}

// handleValidation runs the pre-flight validators without touching any
// platform.
func (h *Handler) handleValidation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	errs, err := h.deps.Validate.ValidateCampaignSet(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrCampaignSetNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.logger.Error("validation error", slog.String("campaign_set_id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if errs == nil {
		errs = []domain.ValidationError{}
	}
	h.writeJSON(w, http.StatusOK, validationResponse{Valid: len(errs) == 0, Errors: errs})
}

func (h *Handler) handleEnqueueSync(w http.ResponseWriter, r *http.Request) {
	h.enqueue(w, r, port.Job{Kind: port.JobSync, CampaignSetID: chi.URLParam(r, "id")})
}

func (h *Handler) handleEnqueueReconcile(w http.ResponseWriter, r *http.Request) {
	h.enqueue(w, r, port.Job{Kind: port.JobReconcile, AccountID: chi.URLParam(r, "accountID")})
}

// enqueue hands the job to the worker queue and answers 202 with its id.
func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request, job port.Job) {
	if h.deps.Jobs == nil {
		h.writeError(w, http.StatusServiceUnavailable, "job queue not configured")
		return
	}
	job.ID = uuid.NewString()
	job.Attempt = 1
	if err := h.deps.Jobs.Publish(r.Context(), job); err != nil {
		h.logger.Error("enqueue error", slog.String("job_id", job.ID), slog.Any("error", err))
		h.writeError(w, http.StatusServiceUnavailable, "job queue unavailable")
		return
	}
	h.writeJSON(w, http.StatusAccepted, jobResponse{JobID: job.ID})
}
