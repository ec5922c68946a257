package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/startupcomply/comply/internal/models"
)

type TeamStore interface {
	GetAll() []models.TeamMember
	Add(member models.TeamMember)
	Update(member models.TeamMember)
	Delete(id string)
}

type TeamService struct {
	members TeamStore
}

func NewTeamService(members TeamStore) *TeamService {
	return &TeamService{members: members}
}

type InviteTeamMemberInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	JobTitle   string `json:"jobTitle"`
}

func (service *TeamService) List() []models.TeamMember {
	return service.members.GetAll()
}

// Invite adds a pending roster entry. Permissions are derived from the role
// once, at creation time; later role edits keep whatever capability set the
// caller supplies.
func (service *TeamService) Invite(input InviteTeamMemberInput) models.TeamMember {
	now := time.Now()
	member := models.TeamMember{
		ID:          uuid.NewString(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Role:        defaultString(input.Role, models.RoleMember),
		Department:  input.Department,
		JobTitle:    input.JobTitle,
		Status:      models.MemberStatusPending,
		JoinedAt:    now,
		LastActive:  now,
		Permissions: models.PermissionsForRole(defaultString(input.Role, models.RoleMember)),
	}

	service.members.Add(member)
	return member
}

// Update replaces by id; unknown ids leave the roster unchanged.
func (service *TeamService) Update(member models.TeamMember) {
	service.members.Update(member)
}

// Delete by unknown id is a no-op, not an error.
func (service *TeamService) Delete(id string) {
	service.members.Delete(id)
}
