package handlers

import (
	"context"
	"sort"
	"sync"

	"github.com/assetledger/apiserver/internal/store"
	"github.com/assetledger/apiserver/types"
)

// memUsers is an in-memory users table with the same uniqueness rules as
// the Postgres schema.
type memUsers struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]types.User
	writes int
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{nextID: 1, rows: map[int]types.User{}}
}

func (m *memUsers) conflict(user types.User) error {
	for id, row := range m.rows {
		if id == user.ID {
			continue
		}
		if row.Name == user.Name {
			return &store.DuplicateKeyError{Field: types.FieldName}
		}
		if row.Email == user.Email {
			return &store.DuplicateKeyError{Field: types.FieldEmail}
		}
	}
	return nil
}

func (m *memUsers) List(context.Context) ([]types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	users := make([]types.User, 0, len(m.rows))
	for _, row := range m.rows {
		users = append(users, row)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memUsers) GetByID(_ context.Context, id int) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return types.User{}, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return row, nil
}

func (m *memUsers) Create(_ context.Context, user types.User) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = 0
	if err := m.conflict(user); err != nil {
		return types.User{}, err
	}
	user.ID = m.nextID
	m.nextID++
	m.rows[user.ID] = user
	m.writes++
	return user, nil
}

func (m *memUsers) Update(_ context.Context, user types.User) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[user.ID]; !ok {
		return types.User{}, store.ErrNotFound
	}
	if err := m.conflict(user); err != nil {
		return types.User{}, err
	}
	m.rows[user.ID] = user
	m.writes++
	return user, nil
}

func (m *memUsers) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	m.writes++
	return nil
}

// memEquipment is an in-memory equipment table enforcing unique id_no.
type memEquipment struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]types.Equipment
	writes int
}

func newMemEquipment() *memEquipment {
	return &memEquipment{nextID: 1, rows: map[int]types.Equipment{}}
}

func (m *memEquipment) conflict(item types.Equipment) error {
	for id, row := range m.rows {
		if id != item.ID && row.IDNo == item.IDNo {
			return &store.DuplicateKeyError{Field: types.FieldIDNo}
		}
	}
	return nil
}

func (m *memEquipment) List(context.Context) ([]types.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]types.Equipment, 0, len(m.rows))
	for _, row := range m.rows {
		items = append(items, row)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *memEquipment) GetByID(_ context.Context, id int) (types.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return types.Equipment{}, store.ErrNotFound
	}
	return row, nil
}

func (m *memEquipment) Create(_ context.Context, item types.Equipment) (types.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = 0
	if err := m.conflict(item); err != nil {
		return types.Equipment{}, err
	}
	item.ID = m.nextID
	m.nextID++
	m.rows[item.ID] = item
	m.writes++
	return item, nil
}

func (m *memEquipment) Update(_ context.Context, item types.Equipment) (types.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[item.ID]; !ok {
		return types.Equipment{}, store.ErrNotFound
	}
	if err := m.conflict(item); err != nil {
		return types.Equipment{}, err
	}
	m.rows[item.ID] = item
	m.writes++
	return item, nil
}

func (m *memEquipment) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	m.writes++
	return nil
}
