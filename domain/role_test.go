package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"super_admin", "admin", "teacher", "student", "parent"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%s) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseRole("principal"); !IsValidation(err) {
		t.Errorf("ParseRole(principal) expected validation error, got %v", err)
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role      Role
		adminTier bool
		teaches   bool
	}{
		{RoleSuperAdmin, true, false},
		{RoleAdmin, true, false},
		{RoleTeacher, false, true},
		{RoleStudent, false, false},
		{RoleParent, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.AdminTier(); got != tt.adminTier {
				t.Errorf("AdminTier() = %v, want %v", got, tt.adminTier)
			}
			if got := tt.role.Teaches(); got != tt.teaches {
				t.Errorf("Teaches() = %v, want %v", got, tt.teaches)
			}
		})
	}
}
