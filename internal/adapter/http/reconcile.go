package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleReconcile pulls platform state for every synced campaign of the
// account and returns the ReconcileResult.
func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	res, err := h.deps.Reconcile.ReconcileAccount(r.Context(), accountID)
	if err != nil {
		h.logger.Error("reconcile error", slog.String("account_id", accountID), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
