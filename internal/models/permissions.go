package models

// Permissions is the capability set derived from a role. It is resolved once
// per request and consumed declaratively, instead of scattering role string
// comparisons across handlers and services.
type Permissions struct {
	CanCreateProject    bool `json:"can_create_project"`
	CanEditProject      bool `json:"can_edit_project"`
	CanViewAllProjects  bool `json:"can_view_all_projects"`
	CanAddItem          bool `json:"can_add_item"`
	CanEditMeasure      bool `json:"can_edit_measure"`
	CanUploadDocuments  bool `json:"can_upload_documents"`
	CanDeleteItem       bool `json:"can_delete_item"`
	CanEditRemarks      bool `json:"can_edit_remarks"`
	CanSubmitForReview  bool `json:"can_submit_for_review"`
	CanResolveReview    bool `json:"can_resolve_review"`
	CanManageUsers      bool `json:"can_manage_users"`
	CanSeeNotifications bool `json:"can_see_notifications"`
}

// PermissionsFor returns the capability set for a role. Unknown roles get no
// capabilities.
func PermissionsFor(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			CanCreateProject:    true,
			CanEditProject:      true,
			CanViewAllProjects:  true,
			CanAddItem:          true,
			CanDeleteItem:       true,
			CanEditRemarks:      true,
			CanResolveReview:    true,
			CanManageUsers:      true,
			CanSeeNotifications: true,
		}
	case RoleAuditor:
		return Permissions{
			CanCreateProject:    true,
			CanEditProject:      true,
			CanViewAllProjects:  true,
			CanAddItem:          true,
			CanDeleteItem:       true,
			CanEditRemarks:      true,
			CanResolveReview:    true,
			CanSeeNotifications: true,
		}
	case RoleManager:
		return Permissions{
			CanAddItem:         true,
			CanEditMeasure:     true,
			CanUploadDocuments: true,
			CanSubmitForReview: true,
		}
	default:
		return Permissions{}
	}
}
