package services

import (
	"strings"
	"time"

	"flourshop/internal/models"
	"flourshop/internal/store"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

type fakeSettingStore struct {
	data map[string]string
	err  error
}

func (f *fakeSettingStore) All() (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]string, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingStore) Upsert(key, value string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.data == nil {
		f.data = map[string]string{}
	}
	f.data[key] = value
	return value, nil
}

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	if user, ok := f.users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByID(id int) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Create(username, passwordHash, role string) (*models.User, error) {
	f.nextID++
	user := &models.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[username] = user
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) UpdatePassword(id int, passwordHash string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeProductStore struct {
	products map[int]*models.Product
	nextID   int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int]*models.Product{}}
}

func (f *fakeProductStore) List() ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(id int) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) Create(p *models.Product) (*models.Product, error) {
	f.nextID++
	stored := *p
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	f.products[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeProductStore) Update(p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return store.ErrNotFound
	}
	stored := *p
	stored.UpdatedAt = time.Now()
	f.products[p.ID] = &stored
	return nil
}

func (f *fakeProductStore) Delete(id int) error {
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) Count() (int, error) {
	return len(f.products), nil
}

type fakeContactStore struct {
	contacts map[int]*models.Contact
	nextID   int
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{contacts: map[int]*models.Contact{}}
}

func (f *fakeContactStore) List(search, status string) ([]models.Contact, error) {
	out := []models.Contact{}
	for _, c := range f.contacts {
		if status != "" && c.Status != status {
			continue
		}
		if search != "" {
			needle := strings.ToLower(search)
			haystack := strings.ToLower(c.Name + " " + c.Email + " " + c.Phone + " " + c.Message)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeContactStore) GetByID(id int) (*models.Contact, error) {
	if c, ok := f.contacts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeContactStore) Create(c *models.Contact) (*models.Contact, error) {
	f.nextID++
	stored := *c
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.contacts[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeContactStore) UpdateStatus(id int, status string) error {
	if c, ok := f.contacts[id]; ok {
		c.Status = status
		return nil
	}
	return store.ErrNotFound
}

func (f *fakeContactStore) Delete(id int) error {
	if _, ok := f.contacts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}
