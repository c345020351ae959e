package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/group"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// GroupController handles group and member-staging endpoints.
type GroupController struct {
	listUseCase    *group.ListGroupsUseCase
	createUseCase  *group.CreateGroupUseCase
	deleteUseCase  *group.DeleteGroupUseCase
	stageUseCase   *group.StageMembersUseCase
	unstageUseCase *group.UnstageMemberUseCase
	stagedUseCase  *group.ListStagedMembersUseCase
	suggestUseCase *group.SuggestMembersUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	listUseCase *group.ListGroupsUseCase,
	createUseCase *group.CreateGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
	stageUseCase *group.StageMembersUseCase,
	unstageUseCase *group.UnstageMemberUseCase,
	stagedUseCase *group.ListStagedMembersUseCase,
	suggestUseCase *group.SuggestMembersUseCase,
) *GroupController {
	return &GroupController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
		stageUseCase:   stageUseCase,
		unstageUseCase: unstageUseCase,
		stagedUseCase:  stagedUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupListResponse(output.Groups))
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), group.CreateGroupInput{
		Name:    req.Name,
		Members: req.Members,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), group.DeleteGroupInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// StageMembers handles POST /groups/members requests.
func (c *GroupController) StageMembers(ctx *gin.Context) {
	var req dto.StageMembersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.stageUseCase.Execute(ctx.Request.Context(), group.StageMembersInput{
		Raw: req.Names,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StagedMembersResponse{Members: output.Members})
}

// UnstageMember handles DELETE /groups/members/:name requests.
func (c *GroupController) UnstageMember(ctx *gin.Context) {
	output, err := c.unstageUseCase.Execute(ctx.Request.Context(), group.UnstageMemberInput{
		Name: ctx.Param("name"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StagedMembersResponse{Members: output.Members})
}

// ListStagedMembers handles GET /groups/members requests.
func (c *GroupController) ListStagedMembers(ctx *gin.Context) {
	output, err := c.stagedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StagedMembersResponse{Members: output.Members})
}

// SuggestMembers handles GET /groups/suggestions requests.
func (c *GroupController) SuggestMembers(ctx *gin.Context) {
	output, err := c.suggestUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := dto.MemberSuggestionsResponse{
		Suggestions: make([]dto.MemberSuggestionResponse, 0, len(output.Suggestions)),
	}
	for _, s := range output.Suggestions {
		resp.Suggestions = append(resp.Suggestions, dto.MemberSuggestionResponse{
			ID:   s.ID,
			Name: s.DisplayName,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}
