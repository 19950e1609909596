package dto

import "backoffice/models"

// Assignee is who assigned a task or role: either a known user or the raw
// label that was stored.
type Assignee interface {
	assignee()
}

// ResolvedAssignee is an assignedBy value that matched a user id.
type ResolvedAssignee struct {
	Kind string      `json:"kind"`
	User models.User `json:"user"`
}

// UnresolvedAssignee keeps an assignedBy value that matched no user.
type UnresolvedAssignee struct {
	Kind string `json:"kind"`
	Raw  string `json:"raw"`
}

func (ResolvedAssignee) assignee()   {}
func (UnresolvedAssignee) assignee() {}

func Resolved(u models.User) Assignee {
	return ResolvedAssignee{Kind: "resolved", User: u}
}

func Unresolved(raw string) Assignee {
	return UnresolvedAssignee{Kind: "unresolved", Raw: raw}
}
