package dto

import "github.com/expense-tracker/backend/internal/domain/entity"

// CreateGroupRequest represents the request body for POST /groups. Members
// is optional; when absent the staged member list is used.
type CreateGroupRequest struct {
	Name    string   `json:"name" binding:"required"`
	Members []string `json:"members"`
}

// GroupResponse represents a single group.
type GroupResponse struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// GroupListResponse represents the response body for GET /groups.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a group entity to its response payload.
func ToGroupResponse(g *entity.Group) GroupResponse {
	return GroupResponse{
		ID:      g.ID,
		Name:    g.Name,
		Members: g.Members,
	}
}

// ToGroupListResponse converts group entities to a list payload.
func ToGroupListResponse(groups []*entity.Group) GroupListResponse {
	out := GroupListResponse{Groups: make([]GroupResponse, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, ToGroupResponse(g))
	}
	return out
}

// StageMembersRequest represents the request body for POST /groups/members.
// Names holds free text; commas separate multiple names.
type StageMembersRequest struct {
	Names string `json:"names" binding:"required"`
}

// StagedMembersResponse represents the current staged member list.
type StagedMembersResponse struct {
	Members []string `json:"members"`
}

// MemberSuggestionResponse represents one user-directory candidate.
type MemberSuggestionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MemberSuggestionsResponse represents the response body for GET /groups/suggestions.
type MemberSuggestionsResponse struct {
	Suggestions []MemberSuggestionResponse `json:"suggestions"`
}
