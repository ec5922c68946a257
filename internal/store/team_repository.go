package store

import "github.com/startupcomply/comply/internal/models"

type TeamRepository struct {
	kv *KV
}

func NewTeamRepository(kv *KV) *TeamRepository {
	return &TeamRepository{kv: kv}
}

func (repo *TeamRepository) GetAll() []models.TeamMember {
	return Read(repo.kv, KeyTeamMembers, defaultTeamMembers())
}

func (repo *TeamRepository) Add(member models.TeamMember) {
	repo.kv.WithLock(KeyTeamMembers, func() {
		members := repo.GetAll()
		members = append(members, member)
		Write(repo.kv, KeyTeamMembers, members)
	})
}

func (repo *TeamRepository) Update(member models.TeamMember) {
	repo.kv.WithLock(KeyTeamMembers, func() {
		members := repo.GetAll()
		for index := range members {
			if members[index].ID == member.ID {
				members[index] = member
				Write(repo.kv, KeyTeamMembers, members)
				break
			}
		}
	})
}

func (repo *TeamRepository) Delete(id string) {
	repo.kv.WithLock(KeyTeamMembers, func() {
		members := repo.GetAll()
		filtered := make([]models.TeamMember, 0, len(members))
		for _, member := range members {
			if member.ID != id {
				filtered = append(filtered, member)
			}
		}
		Write(repo.kv, KeyTeamMembers, filtered)
	})
}
