package store

import "github.com/startupcomply/comply/internal/models"

type UserRepository struct {
	kv *KV
}

func NewUserRepository(kv *KV) *UserRepository {
	return &UserRepository{kv: kv}
}

func (repo *UserRepository) GetAll() []models.User {
	return Read(repo.kv, KeyUsers, []models.User{})
}

// FindByEmail matches exactly, case-sensitive as stored.
func (repo *UserRepository) FindByEmail(email string) (models.User, bool) {
	for _, user := range repo.GetAll() {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (repo *UserRepository) FindByID(id string) (models.User, bool) {
	for _, user := range repo.GetAll() {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

// Add appends the user and makes them the current user.
func (repo *UserRepository) Add(user models.User) {
	repo.kv.WithLock(KeyUsers, func() {
		users := Read(repo.kv, KeyUsers, []models.User{})
		users = append(users, user)
		Write(repo.kv, KeyUsers, users)
	})
	Write(repo.kv, KeyCurrentUser, user)
}

// Update replaces the record with a matching id; unknown ids leave the
// collection untouched. The currentUser key is refreshed either way.
func (repo *UserRepository) Update(user models.User) {
	repo.kv.WithLock(KeyUsers, func() {
		users := Read(repo.kv, KeyUsers, []models.User{})
		for index := range users {
			if users[index].ID == user.ID {
				users[index] = user
				Write(repo.kv, KeyUsers, users)
				break
			}
		}
	})
	Write(repo.kv, KeyCurrentUser, user)
}

func (repo *UserRepository) CurrentUser() *models.User {
	return Read[*models.User](repo.kv, KeyCurrentUser, nil)
}

// ClearCurrentUser ends the persisted session; user records stay around for
// the next login.
func (repo *UserRepository) ClearCurrentUser() {
	repo.kv.Delete(KeyCurrentUser)
}
