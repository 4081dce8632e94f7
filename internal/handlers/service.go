package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/upcheck-dev/upcheck/internal/core"
	"github.com/upcheck-dev/upcheck/internal/middleware"
	"github.com/upcheck-dev/upcheck/internal/models"
)

type CreateServiceRequest struct {
	Name                  string         `json:"name" binding:"required,min=1,max=100"`
	BaseURL               string         `json:"base_url" binding:"required,url"`
	DefaultHeaders        datatypes.JSON `json:"default_headers"`
	DefaultTimeoutSeconds *int           `json:"default_timeout_seconds" binding:"omitempty,min=1,max=120"`
}

type UpdateServiceRequest struct {
	Name                  *string        `json:"name" binding:"omitempty,min=1,max=100"`
	BaseURL               *string        `json:"base_url" binding:"omitempty,url"`
	DefaultHeaders        datatypes.JSON `json:"default_headers"`
	DefaultTimeoutSeconds *int           `json:"default_timeout_seconds" binding:"omitempty,min=1,max=120"`
}

type ServiceResponse struct {
	ID                    uint           `json:"id"`
	WorkspaceID           uint           `json:"workspace_id"`
	Name                  string         `json:"name"`
	BaseURL               string         `json:"base_url"`
	DefaultHeaders        datatypes.JSON `json:"default_headers"`
	DefaultTimeoutSeconds int            `json:"default_timeout_seconds"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func toServiceResponse(service *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:                    service.ID,
		WorkspaceID:           service.WorkspaceID,
		Name:                  service.Name,
		BaseURL:               service.BaseURL,
		DefaultHeaders:        service.DefaultHeaders,
		DefaultTimeoutSeconds: service.DefaultTimeoutSeconds,
		CreatedAt:             service.CreatedAt,
		UpdatedAt:             service.UpdatedAt,
	}
}

type ServiceHandler struct {
	services *core.ServiceCore
}

func NewServiceHandler(services *core.ServiceCore) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) Create(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	var body CreateServiceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	service, err := h.services.Create(ctx.Request.Context(), workspaceID, userID, core.CreateServiceInput{
		Name:                  body.Name,
		BaseURL:               body.BaseURL,
		DefaultHeaders:        body.DefaultHeaders,
		DefaultTimeoutSeconds: body.DefaultTimeoutSeconds,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, toServiceResponse(service))
}

func (h *ServiceHandler) List(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	services, err := h.services.List(ctx.Request.Context(), workspaceID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ServiceResponse, 0, len(services))
	for i := range services {
		response = append(response, toServiceResponse(&services[i]))
	}

	respondSuccess(ctx, http.StatusOK, response)
}

func (h *ServiceHandler) Get(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	serviceID, ok := pathID(ctx, "service_id")
	if !ok {
		return
	}

	service, err := h.services.Get(ctx.Request.Context(), serviceID, workspaceID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toServiceResponse(service))
}

func (h *ServiceHandler) Update(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	serviceID, ok := pathID(ctx, "service_id")
	if !ok {
		return
	}

	var body UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	service, err := h.services.Update(ctx.Request.Context(), serviceID, workspaceID, userID, core.UpdateServiceInput{
		Name:                  body.Name,
		BaseURL:               body.BaseURL,
		DefaultHeaders:        body.DefaultHeaders,
		DefaultTimeoutSeconds: body.DefaultTimeoutSeconds,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toServiceResponse(service))
}

func (h *ServiceHandler) Delete(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	serviceID, ok := pathID(ctx, "service_id")
	if !ok {
		return
	}

	if err := h.services.Delete(ctx.Request.Context(), serviceID, workspaceID, userID); err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, nil)
}
