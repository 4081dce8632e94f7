package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upcheck-dev/upcheck/internal/core"
	"github.com/upcheck-dev/upcheck/internal/middleware"
	"github.com/upcheck-dev/upcheck/internal/models"
)

type CreateWorkspaceRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=100"`
	Slug *string `json:"slug" binding:"omitempty,min=1,max=60,lowercase"`
}

type UpdateWorkspaceRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" binding:"omitempty,min=1,max=60,lowercase"`
}

type WorkspaceResponse struct {
	ID                      uint      `json:"id"`
	OwnerID                 uint      `json:"owner_id"`
	Name                    string    `json:"name"`
	Slug                    string    `json:"slug"`
	Plan                    string    `json:"plan"`
	MaxServices             int       `json:"max_services"`
	MaxCheckIntervalSeconds int       `json:"max_check_interval_seconds"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func toWorkspaceResponse(workspace *models.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:                      workspace.ID,
		OwnerID:                 workspace.OwnerID,
		Name:                    workspace.Name,
		Slug:                    workspace.Slug,
		Plan:                    workspace.Plan,
		MaxServices:             workspace.MaxServices,
		MaxCheckIntervalSeconds: workspace.MaxCheckIntervalSeconds,
		CreatedAt:               workspace.CreatedAt,
		UpdatedAt:               workspace.UpdatedAt,
	}
}

type WorkspaceHandler struct {
	workspaces *core.WorkspaceCore
}

func NewWorkspaceHandler(workspaces *core.WorkspaceCore) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces}
}

func (h *WorkspaceHandler) Create(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	var body CreateWorkspaceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	workspace, err := h.workspaces.Create(ctx.Request.Context(), userID, core.CreateWorkspaceInput{
		Name: body.Name,
		Slug: body.Slug,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, toWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) List(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaces, err := h.workspaces.List(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		response = append(response, toWorkspaceResponse(&workspaces[i]))
	}

	respondSuccess(ctx, http.StatusOK, response)
}

func (h *WorkspaceHandler) Get(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	workspace, err := h.workspaces.Get(ctx.Request.Context(), workspaceID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) Update(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	var body UpdateWorkspaceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	workspace, err := h.workspaces.Update(ctx.Request.Context(), workspaceID, userID, core.UpdateWorkspaceInput{
		Name: body.Name,
		Slug: body.Slug,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) Delete(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	workspaceID, ok := pathID(ctx, "workspace_id")
	if !ok {
		return
	}

	if err := h.workspaces.Delete(ctx.Request.Context(), workspaceID, userID); err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, nil)
}
