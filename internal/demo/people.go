package demo

import (
	"errors"
	"fmt"
	"sync/atomic"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	personTable = "person"
	emailIndex  = "id"
)

var ErrPersonNotFound = errors.New("person not found")

type Person struct {
	Email string
	Name  string
	Age   int
}

// SamplePeople seeds the demo database.
var SamplePeople = []Person{
	{Email: "email1", Name: "name1", Age: 1},
	{Email: "email2", Name: "name2", Age: 2},
	{Email: "email3", Name: "name3", Age: 3},
}

// PersonDB is an in-memory person table. Every FindByEmail counts as one
// database round trip, which is what memoization saves.
type PersonDB struct {
	db      *memdb.MemDB
	lookups atomic.Uint64
}

func personSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			personTable: {
				Name: personTable,
				Indexes: map[string]*memdb.IndexSchema{
					emailIndex: {
						Name:    emailIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
		},
	}
}

func NewPersonDB() (*PersonDB, error) {
	db, err := memdb.NewMemDB(personSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create person db: %w", err)
	}
	return &PersonDB{db: db}, nil
}

// Insert adds people in a single transaction. An existing email is overwritten.
func (p *PersonDB) Insert(people ...Person) error {
	txn := p.db.Txn(true)
	defer txn.Abort()

	for _, person := range people {
		if err := txn.Insert(personTable, person); err != nil {
			return fmt.Errorf("failed to insert %q: %w", person.Email, err)
		}
	}
	txn.Commit()
	return nil
}

func (p *PersonDB) FindByEmail(email string) (Person, error) {
	p.lookups.Add(1)

	txn := p.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(personTable, emailIndex, email)
	if err != nil {
		return Person{}, fmt.Errorf("failed to look up %q: %w", email, err)
	}
	if raw == nil {
		return Person{}, fmt.Errorf("%w: %q", ErrPersonNotFound, email)
	}
	return raw.(Person), nil
}

// Lookups returns how many times the table was queried.
func (p *PersonDB) Lookups() uint64 {
	return p.lookups.Load()
}
