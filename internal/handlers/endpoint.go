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

type CreateEndpointRequest struct {
	Name                 string         `json:"name" binding:"required,min=1,max=100"`
	Route                string         `json:"route" binding:"required,min=1,max=2048"`
	HTTPMethod           *string        `json:"http_method" binding:"omitempty,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
	Headers              datatypes.JSON `json:"headers"`
	Body                 datatypes.JSON `json:"body"`
	ExpectedStatusCode   *int           `json:"expected_status_code" binding:"omitempty,min=100,max=599"`
	ExpectedBody         datatypes.JSON `json:"expected_body"`
	CheckIntervalSeconds *int           `json:"check_interval_seconds" binding:"omitempty,min=10,max=86400"`
	IsActive             *bool          `json:"is_active"`
}

type UpdateEndpointRequest struct {
	Name                 *string        `json:"name" binding:"omitempty,min=1,max=100"`
	Route                *string        `json:"route" binding:"omitempty,min=1,max=2048"`
	HTTPMethod           *string        `json:"http_method" binding:"omitempty,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
	Headers              datatypes.JSON `json:"headers"`
	Body                 datatypes.JSON `json:"body"`
	ExpectedStatusCode   *int           `json:"expected_status_code" binding:"omitempty,min=100,max=599"`
	ExpectedBody         datatypes.JSON `json:"expected_body"`
	CheckIntervalSeconds *int           `json:"check_interval_seconds" binding:"omitempty,min=10,max=86400"`
	IsActive             *bool          `json:"is_active"`
}

type EndpointResponse struct {
	ID                   uint           `json:"id"`
	WorkspaceID          uint           `json:"workspace_id"`
	ServiceID            uint           `json:"service_id"`
	Name                 string         `json:"name"`
	Route                string         `json:"route"`
	HTTPMethod           string         `json:"http_method"`
	Headers              datatypes.JSON `json:"headers"`
	Body                 datatypes.JSON `json:"body"`
	ExpectedStatusCode   int            `json:"expected_status_code"`
	ExpectedBody         datatypes.JSON `json:"expected_body"`
	CheckIntervalSeconds int            `json:"check_interval_seconds"`
	IsActive             bool           `json:"is_active"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func toEndpointResponse(endpoint *models.Endpoint) EndpointResponse {
	return EndpointResponse{
		ID:                   endpoint.ID,
		WorkspaceID:          endpoint.WorkspaceID,
		ServiceID:            endpoint.ServiceID,
		Name:                 endpoint.Name,
		Route:                endpoint.Route,
		HTTPMethod:           endpoint.HTTPMethod,
		Headers:              endpoint.Headers,
		Body:                 endpoint.Body,
		ExpectedStatusCode:   endpoint.ExpectedStatusCode,
		ExpectedBody:         endpoint.ExpectedBody,
		CheckIntervalSeconds: endpoint.CheckIntervalSeconds,
		IsActive:             endpoint.IsActive,
		CreatedAt:            endpoint.CreatedAt,
		UpdatedAt:            endpoint.UpdatedAt,
	}
}

type EndpointHandler struct {
	endpoints *core.EndpointCore
}

func NewEndpointHandler(endpoints *core.EndpointCore) *EndpointHandler {
	return &EndpointHandler{endpoints: endpoints}
}

// scopeIDs pulls the authenticated user and both ancestor path ids. Every
// endpoint route is nested under a workspace and a service.
func (h *EndpointHandler) scopeIDs(ctx *gin.Context) (userID, workspaceID, serviceID uint, ok bool) {
	userID, ok = middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return 0, 0, 0, false
	}

	workspaceID, ok = pathID(ctx, "workspace_id")
	if !ok {
		return 0, 0, 0, false
	}

	serviceID, ok = pathID(ctx, "service_id")
	if !ok {
		return 0, 0, 0, false
	}

	return userID, workspaceID, serviceID, true
}

func (h *EndpointHandler) Create(ctx *gin.Context) {
	userID, workspaceID, serviceID, ok := h.scopeIDs(ctx)
	if !ok {
		return
	}

	var body CreateEndpointRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	endpoint, err := h.endpoints.Create(ctx.Request.Context(), workspaceID, serviceID, userID, core.CreateEndpointInput{
		Name:                 body.Name,
		Route:                body.Route,
		HTTPMethod:           body.HTTPMethod,
		Headers:              body.Headers,
		Body:                 body.Body,
		ExpectedStatusCode:   body.ExpectedStatusCode,
		ExpectedBody:         body.ExpectedBody,
		CheckIntervalSeconds: body.CheckIntervalSeconds,
		IsActive:             body.IsActive,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, toEndpointResponse(endpoint))
}

func (h *EndpointHandler) List(ctx *gin.Context) {
	userID, workspaceID, serviceID, ok := h.scopeIDs(ctx)
	if !ok {
		return
	}

	endpoints, err := h.endpoints.List(ctx.Request.Context(), workspaceID, serviceID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]EndpointResponse, 0, len(endpoints))
	for i := range endpoints {
		response = append(response, toEndpointResponse(&endpoints[i]))
	}

	respondSuccess(ctx, http.StatusOK, response)
}

func (h *EndpointHandler) Get(ctx *gin.Context) {
	userID, workspaceID, serviceID, ok := h.scopeIDs(ctx)
	if !ok {
		return
	}

	endpointID, ok := pathID(ctx, "endpoint_id")
	if !ok {
		return
	}

	endpoint, err := h.endpoints.Get(ctx.Request.Context(), endpointID, serviceID, workspaceID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toEndpointResponse(endpoint))
}

func (h *EndpointHandler) Update(ctx *gin.Context) {
	userID, workspaceID, serviceID, ok := h.scopeIDs(ctx)
	if !ok {
		return
	}

	endpointID, ok := pathID(ctx, "endpoint_id")
	if !ok {
		return
	}

	var body UpdateEndpointRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	endpoint, err := h.endpoints.Update(ctx.Request.Context(), endpointID, serviceID, workspaceID, userID, core.UpdateEndpointInput{
		Name:                 body.Name,
		Route:                body.Route,
		HTTPMethod:           body.HTTPMethod,
		Headers:              body.Headers,
		Body:                 body.Body,
		ExpectedStatusCode:   body.ExpectedStatusCode,
		ExpectedBody:         body.ExpectedBody,
		CheckIntervalSeconds: body.CheckIntervalSeconds,
		IsActive:             body.IsActive,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toEndpointResponse(endpoint))
}

func (h *EndpointHandler) Delete(ctx *gin.Context) {
	userID, workspaceID, serviceID, ok := h.scopeIDs(ctx)
	if !ok {
		return
	}

	endpointID, ok := pathID(ctx, "endpoint_id")
	if !ok {
		return
	}

	if err := h.endpoints.Delete(ctx.Request.Context(), endpointID, serviceID, workspaceID, userID); err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, nil)
}
