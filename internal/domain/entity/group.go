// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// CreatorName is the implicit member representing the current user. Every
// group contains it, whether or not the caller listed it.
const CreatorName = "You"

// Group represents a named set of people that group expenses are split
// across. The JSON tags match the persisted document layout.
type Group struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// NewGroup creates a Group with a creation-timestamp ID, prepending the
// creator when the member list does not already include them.
func NewGroup(name string, members []string) *Group {
	if !containsFold(members, CreatorName) {
		members = append([]string{CreatorName}, members...)
	}
	return &Group{
		ID:      time.Now().UnixMilli(),
		Name:    name,
		Members: members,
	}
}

// HasMember reports whether name is a member, compared case-insensitively.
func (g *Group) HasMember(name string) bool {
	return containsFold(g.Members, name)
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
