package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsMatrix(t *testing.T) {
	tests := []struct {
		role string
		want Permissions
	}{
		{
			role: RoleAdmin,
			want: Permissions{
				CanCreateProject:    true,
				CanEditProject:      true,
				CanViewAllProjects:  true,
				CanAddItem:          true,
				CanDeleteItem:       true,
				CanEditRemarks:      true,
				CanResolveReview:    true,
				CanManageUsers:      true,
				CanSeeNotifications: true,
			},
		},
		{
			role: RoleAuditor,
			want: Permissions{
				CanCreateProject:    true,
				CanEditProject:      true,
				CanViewAllProjects:  true,
				CanAddItem:          true,
				CanDeleteItem:       true,
				CanEditRemarks:      true,
				CanResolveReview:    true,
				CanSeeNotifications: true,
			},
		},
		{
			role: RoleManager,
			want: Permissions{
				CanAddItem:         true,
				CanEditMeasure:     true,
				CanUploadDocuments: true,
				CanSubmitForReview: true,
			},
		},
		{
			role: "intern",
			want: Permissions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionsFor(tt.role))
		})
	}
}

func TestManagerNeverResolvesReviews(t *testing.T) {
	p := PermissionsFor(RoleManager)
	assert.False(t, p.CanResolveReview)
	assert.False(t, p.CanDeleteItem)
	assert.False(t, p.CanEditRemarks)
	assert.True(t, p.CanSubmitForReview)
}
