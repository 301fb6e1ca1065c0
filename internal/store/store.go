package store

import (
	"database/sql"
	"errors"

	"flourshop/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	Create(username, passwordHash, role string) (*models.User, error)
	UpdatePassword(id int, passwordHash string) error
}

type ProductStore interface {
	List() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(p *models.Product) (*models.Product, error)
	Update(p *models.Product) error
	Delete(id int) error
	Count() (int, error)
}

type ContactStore interface {
	List(search, status string) ([]models.Contact, error)
	GetByID(id int) (*models.Contact, error)
	Create(c *models.Contact) (*models.Contact, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error
}

type SettingStore interface {
	All() (map[string]string, error)
	Upsert(key, value string) (string, error)
}

// Stores bundles the narrow interfaces the services consume.
type Stores struct {
	Users    UserStore
	Products ProductStore
	Contacts ContactStore
	Settings SettingStore
}

// New wires the MySQL-backed implementations over a shared connection pool.
func New(db *sql.DB) Stores {
	return Stores{
		Users:    &Users{db: db},
		Products: &Products{db: db},
		Contacts: &Contacts{db: db},
		Settings: &Settings{db: db},
	}
}
