package dialog

import (
	"context"
	"strings"

	"skladbot/internal/domain"
	"skladbot/internal/storage"
)

// fakeStore is an in-memory Storage used to drive the engine in tests.
type fakeStore struct {
	users        map[int64]domain.User
	clients      map[int64]domain.Client
	nextClientID int64
	pickupLogs   []domain.PickupLog
	products     []domain.Product
	stands       []domain.Stand
	outbound     []domain.OutboundPlan
	warehouse    []domain.WarehousePlan
	hours        []domain.HoursEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[int64]domain.User),
		clients: make(map[int64]domain.Client),
	}
}

func (f *fakeStore) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) UpsertUser(_ context.Context, u domain.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) UpdateUserRole(_ context.Context, userID int64, role domain.Role) error {
	if u, ok := f.users[userID]; ok {
		u.Role = role
		f.users[userID] = u
	}
	return nil
}

func (f *fakeStore) UpdateUserLang(_ context.Context, userID int64, lang string) error {
	if u, ok := f.users[userID]; ok {
		u.Lang = lang
		f.users[userID] = u
	}
	return nil
}

func (f *fakeStore) CreateClient(_ context.Context, c domain.Client) (int64, error) {
	f.nextClientID++
	c.ID = f.nextClientID
	f.clients[c.ID] = c
	return c.ID, nil
}

func matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f *fakeStore) SearchClients(_ context.Context, search string) ([]domain.Client, error) {
	var out []domain.Client
	for id := f.nextClientID; id >= 1; id-- {
		c, ok := f.clients[id]
		if ok && matches(search, c.Name, c.City) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateClientReadyLier(_ context.Context, id int64, date, responsible string) error {
	if c, ok := f.clients[id]; ok {
		c.ReadyLierDate.SetValid(date)
		c.ReadyLierBy.SetValid(responsible)
		f.clients[id] = c
	}
	return nil
}

func (f *fakeStore) UpdateClientProcessed(_ context.Context, id int64, datetime, responsible string) error {
	if c, ok := f.clients[id]; ok {
		c.ProcessedDatetime.SetValid(datetime)
		c.ProcessedBy.SetValid(responsible)
		f.clients[id] = c
	}
	return nil
}

func (f *fakeStore) UpdateClientRemainder(_ context.Context, id int64, remainder string) error {
	if c, ok := f.clients[id]; ok {
		c.Remainder.SetValid(remainder)
		f.clients[id] = c
	}
	return nil
}

func (f *fakeStore) ListPickupClients(_ context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for id := f.nextClientID; id >= 1; id-- {
		c, ok := f.clients[id]
		if ok && c.Remainder.Valid && strings.TrimSpace(c.Remainder.String) != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) AddPickupLog(_ context.Context, l domain.PickupLog) error {
	f.pickupLogs = append(f.pickupLogs, l)
	return nil
}

func (f *fakeStore) SearchProducts(_ context.Context, search string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if matches(search, p.Sort, p.Name, p.Article) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) SearchStands(_ context.Context, search string) ([]domain.Stand, error) {
	var out []domain.Stand
	for _, s := range f.stands {
		if matches(search, s.StandName, s.Size, s.Article, s.TilesText) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ListOutboundPlans(_ context.Context, start, end string) ([]domain.OutboundPlan, error) {
	var out []domain.OutboundPlan
	for _, p := range f.outbound {
		if p.Date >= start && p.Date <= end {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListWarehousePlans(_ context.Context, start, end string) ([]domain.WarehousePlan, error) {
	var out []domain.WarehousePlan
	for _, p := range f.warehouse {
		if p.Date >= start && p.Date <= end {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) AddHours(_ context.Context, h domain.HoursEntry) error {
	f.hours = append(f.hours, h)
	return nil
}

func (f *fakeStore) SumHoursByName(_ context.Context, name, start, end string) (float64, error) {
	var total float64
	for _, h := range f.hours {
		u, ok := f.users[h.UserID]
		if ok && u.Name == name && h.Date >= start && h.Date <= end {
			total += h.Hours
		}
	}
	return total, nil
}
