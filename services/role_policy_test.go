package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nagesh2809/cafe-management/entity"
)

func TestEmailKeywordPolicy(t *testing.T) {
	policy := DefaultRolePolicy()

	cases := []struct {
		email string
		want  string
	}{
		{"admin@niloufer.com", entity.RoleAdmin},
		{"ADMIN@niloufer.com", entity.RoleAdmin},
		{"cafeAdMiN@example.com", entity.RoleAdmin},
		{"superadministrator@example.com", entity.RoleAdmin},
		{"maya@example.com", entity.RoleUser},
		{"adm.in@example.com", entity.RoleUser},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.RoleFor(tc.email), "email %q", tc.email)
	}
}

func TestCustomKeywordPolicy(t *testing.T) {
	policy := EmailKeywordPolicy{Keyword: "staff"}
	assert.Equal(t, entity.RoleAdmin, policy.RoleFor("staff@example.com"))
	assert.Equal(t, entity.RoleUser, policy.RoleFor("admin@example.com"))
}
