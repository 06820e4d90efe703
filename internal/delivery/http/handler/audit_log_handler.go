package handler

import (
	"net/http"
	"strconv"

	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
)

type AuditLogHandler struct {
	auditUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditUsecase: auditUsecase}
}

func (h *AuditLogHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.auditUsecase.GetRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
