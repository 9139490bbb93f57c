package services

import (
	"strings"

	"github.com/Nagesh2809/cafe-management/entity"
)

// RolePolicy decides which role a fresh registration gets. The rule is
// assigned once at creation and never changed afterwards.
type RolePolicy interface {
	RoleFor(email string) string
}

// EmailKeywordPolicy grants admin to any email containing the keyword,
// case-insensitive. This mirrors the historical convenience rule; it is
// not a security boundary.
type EmailKeywordPolicy struct {
	Keyword string
}

func (p EmailKeywordPolicy) RoleFor(email string) string {
	if strings.Contains(strings.ToLower(email), strings.ToLower(p.Keyword)) {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

func DefaultRolePolicy() RolePolicy {
	return EmailKeywordPolicy{Keyword: "admin"}
}
