package services

import (
	"testing"

	"github.com/startupcomply/comply/internal/models"
)

type stubTeamStore struct {
	members []models.TeamMember
}

func (stub *stubTeamStore) GetAll() []models.TeamMember {
	return stub.members
}

func (stub *stubTeamStore) Add(member models.TeamMember) {
	stub.members = append(stub.members, member)
}

func (stub *stubTeamStore) Update(member models.TeamMember) {
	for index := range stub.members {
		if stub.members[index].ID == member.ID {
			stub.members[index] = member
		}
	}
}

func (stub *stubTeamStore) Delete(id string) {
	filtered := stub.members[:0]
	for _, member := range stub.members {
		if member.ID != id {
			filtered = append(filtered, member)
		}
	}
	stub.members = filtered
}

func TestInviteDerivesPermissionsFromRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want []string
	}{
		{name: "admin gets full set", role: models.RoleAdmin, want: []string{models.PermissionRead, models.PermissionWrite, models.PermissionAdmin}},
		{name: "manager gets read write", role: models.RoleManager, want: []string{models.PermissionRead, models.PermissionWrite}},
		{name: "member gets read", role: models.RoleMember, want: []string{models.PermissionRead}},
		{name: "missing role defaults to member", role: "", want: []string{models.PermissionRead}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := &stubTeamStore{}
			service := NewTeamService(store)

			member := service.Invite(InviteTeamMemberInput{
				FirstName: "Dana",
				LastName:  "Reyes",
				Email:     "dana@startupcomply.com",
				Role:      testCase.role,
			})

			if member.Status != models.MemberStatusPending {
				t.Fatalf("invitations start pending, got %q", member.Status)
			}
			if len(member.Permissions) != len(testCase.want) {
				t.Fatalf("expected %d permissions, got %v", len(testCase.want), member.Permissions)
			}
			for index, permission := range testCase.want {
				if member.Permissions[index] != permission {
					t.Fatalf("expected permissions %v, got %v", testCase.want, member.Permissions)
				}
			}
			if len(store.members) != 1 {
				t.Fatalf("expected the member to be stored")
			}
		})
	}
}

func TestRoleEditKeepsSuppliedPermissions(t *testing.T) {
	store := &stubTeamStore{members: []models.TeamMember{{
		ID:          "member-1",
		Role:        models.RoleAdmin,
		Permissions: []string{models.PermissionRead, models.PermissionWrite, models.PermissionAdmin},
	}}}
	service := NewTeamService(store)

	edited := store.members[0]
	edited.Role = models.RoleMember
	service.Update(edited)

	if len(store.members[0].Permissions) != 3 {
		t.Fatalf("role edits must not rewrite the capability set, got %v", store.members[0].Permissions)
	}
}
