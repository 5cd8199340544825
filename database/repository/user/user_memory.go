package userRepo

import (
	"fmt"
	"sync"

	"mediconnect/models"
)

// MemoryUserRepo implements UserRepository with an in-process map. It backs
// the seeded demo deployment and the test suites.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.User
	order []string
}

// NewMemoryUserRepo constructs an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{byID: make(map[string]models.User)}
}

func (repo *MemoryUserRepo) Create(user *models.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[user.ID]; exists {
		return fmt.Errorf("user with id %s already exists", user.ID)
	}
	repo.byID[user.ID] = *user
	repo.order = append(repo.order, user.ID)
	return nil
}

func (repo *MemoryUserRepo) GetByID(id string) (*models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if u, ok := repo.byID[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (repo *MemoryUserRepo) GetByEmail(email string) (*models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		if u := repo.byID[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (repo *MemoryUserRepo) GetByUsername(username string) (*models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		if u := repo.byID[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (repo *MemoryUserRepo) Update(user *models.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[user.ID]; !exists {
		return fmt.Errorf("user with id %s not found", user.ID)
	}
	repo.byID[user.ID] = *user
	return nil
}

func (repo *MemoryUserRepo) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[id]; !exists {
		return fmt.Errorf("user with id %s not found", id)
	}
	delete(repo.byID, id)
	for i, oid := range repo.order {
		if oid == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}

func (repo *MemoryUserRepo) List() ([]models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]models.User, 0, len(repo.order))
	for _, id := range repo.order {
		users = append(users, repo.byID[id])
	}
	return users, nil
}

func (repo *MemoryUserRepo) ListDoctors(specialization, location string) ([]models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var doctors []models.User
	for _, id := range repo.order {
		u := repo.byID[id]
		if u.Role != models.RoleDoctor {
			continue
		}
		if specialization != "" && u.Specialization != specialization {
			continue
		}
		if location != "" && u.Location != location {
			continue
		}
		doctors = append(doctors, u)
	}
	return doctors, nil
}
