package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pharmastock/internal/infra"
	"pharmastock/internal/model"
	"pharmastock/internal/repository"

	"github.com/google/uuid"
)

// ── In-memory catalog shared by the drug and stock repository stubs ─────────

type memStore struct {
	mu    sync.Mutex
	drugs map[uuid.UUID]model.Drug
	lots  map[uuid.UUID]model.StockLot
	seq   int
}

func newMemStore() *memStore {
	return &memStore{
		drugs: make(map[uuid.UUID]model.Drug),
		lots:  make(map[uuid.UUID]model.StockLot),
	}
}

// stamp gives every write a strictly increasing created_at so "oldest lot"
// is deterministic.
func (m *memStore) stamp() time.Time {
	m.seq++
	return time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

func (m *memStore) withLots(d model.Drug) model.Drug {
	d.Stocks = nil
	for _, l := range m.lots {
		if l.DrugID == d.DrugID {
			d.Stocks = append(d.Stocks, l)
		}
	}
	sort.Slice(d.Stocks, func(i, j int) bool {
		return d.Stocks[i].ExpiryDate().Before(d.Stocks[j].ExpiryDate())
	})
	return d
}

func (m *memStore) sortedDrugs(keep func(model.Drug) bool) []model.Drug {
	out := []model.Drug{}
	for _, d := range m.drugs {
		if keep(d) {
			out = append(out, m.withLots(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type memDrugRepo struct{ *memStore }

func (r memDrugRepo) List(_ context.Context, f repository.DrugFilter) ([]model.Drug, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedDrugs(func(d model.Drug) bool {
		return f.DrugType == "" || string(d.DrugType) == f.DrugType
	}), nil
}

func (r memDrugRepo) FindByName(_ context.Context, term string) ([]model.Drug, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	term = strings.ToLower(term)
	return r.sortedDrugs(func(d model.Drug) bool {
		return strings.Contains(strings.ToLower(d.Name), term)
	}), nil
}

func (r memDrugRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Drug, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drugs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d = r.withLots(d)
	return &d, nil
}

func (r memDrugRepo) FindByCode(_ context.Context, code string) (*model.Drug, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drugs {
		if d.Code == code {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memDrugRepo) FindIDByNameAndUnit(_ context.Context, name, unitType string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name = strings.ToLower(name)
	matches := r.sortedDrugs(func(d model.Drug) bool {
		return d.UnitType == unitType && strings.Contains(strings.ToLower(d.Name), name)
	})
	if len(matches) == 0 {
		return uuid.Nil, repository.ErrNotFound
	}
	return matches[0].DrugID, nil
}

func (r memDrugRepo) Create(_ context.Context, d *model.Drug, initial *model.StockLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.DrugID == uuid.Nil {
		d.DrugID = uuid.New()
	}
	stored := *d
	stored.Stocks = nil
	r.drugs[d.DrugID] = stored
	if initial != nil {
		initial.DrugID = d.DrugID
		initial.CreatedAt = r.stamp()
		r.lots[initial.StockID] = *initial
		d.Stocks = []model.StockLot{*initial}
	}
	return nil
}

func (r memDrugRepo) Update(_ context.Context, d *model.Drug) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drugs[d.DrugID]; !ok {
		return repository.ErrNotFound
	}
	stored := *d
	stored.Stocks = nil
	r.drugs[d.DrugID] = stored
	return nil
}

func (r memDrugRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drugs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.drugs, id)
	for sid, l := range r.lots {
		if l.DrugID == id {
			delete(r.lots, sid)
		}
	}
	return nil
}

func (r memDrugRepo) ListLowStock(_ context.Context, threshold int) ([]repository.LowStockRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := []repository.LowStockRow{}
	for _, d := range r.sortedDrugs(func(model.Drug) bool { return true }) {
		if total := d.TotalAmount(); total < threshold {
			rows = append(rows, repository.LowStockRow{
				DrugID: d.DrugID, Name: d.Name, UnitType: d.UnitType, TotalAmount: total,
			})
		}
	}
	return rows, nil
}

type memStockRepo struct{ *memStore }

func (r memStockRepo) Create(_ context.Context, s *model.StockLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drugs[s.DrugID]; !ok {
		return repository.ErrNotFound
	}
	if s.StockID == uuid.Nil {
		s.StockID = uuid.New()
	}
	s.CreatedAt = r.stamp()
	r.lots[s.StockID] = *s
	return nil
}

func (r memStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (r memStockRepo) Resolve(_ context.Context, ref repository.StockRef) (*model.StockLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref.StockID != nil {
		l, ok := r.lots[*ref.StockID]
		if !ok || (ref.DrugID != nil && l.DrugID != *ref.DrugID) {
			return nil, repository.ErrNotFound
		}
		return &l, nil
	}
	if ref.DrugID == nil {
		return nil, repository.ErrNotFound
	}
	var oldest *model.StockLot
	for _, l := range r.lots {
		l := l
		if l.DrugID == *ref.DrugID && (oldest == nil || l.CreatedAt.Before(oldest.CreatedAt)) {
			oldest = &l
		}
	}
	if oldest == nil {
		return nil, repository.ErrNotFound
	}
	return oldest, nil
}

func (r memStockRepo) DecrementBySale(_ context.Context, id uuid.UUID, quantity int) (*model.StockLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if l.Amount < quantity {
		return nil, repository.ErrInsufficientStock
	}
	l.Amount -= quantity
	r.lots[id] = l
	return &l, nil
}

func (r memStockRepo) SetAmount(_ context.Context, id uuid.UUID, amount int) (*model.StockLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	l.Amount = amount
	r.lots[id] = l
	return &l, nil
}

func (r memStockRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lots[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.lots, id)
	return nil
}

func (r memStockRepo) ListExpiringBefore(_ context.Context, cutoff time.Time) ([]repository.ExpiringRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := []repository.ExpiringRow{}
	for _, l := range r.lots {
		if l.ExpiryDate().After(cutoff) {
			continue
		}
		rows = append(rows, repository.ExpiringRow{
			StockID:  l.StockID,
			DrugID:   l.DrugID,
			DrugName: r.drugs[l.DrugID].Name,
			Amount:   l.Amount,
			Expired:  l.ExpiryDate(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Expired.Before(rows[j].Expired) })
	return rows, nil
}

// ── Fixtures ─────────────────────────────────────────────────────────────────

type fixture struct {
	store  *memStore
	drugs  DrugService
	stocks StockService
}

func newFixture() *fixture {
	store := newMemStore()
	var cache *infra.CatalogCache // nil: caching disabled
	return &fixture{
		store:  store,
		drugs:  NewDrugService(memDrugRepo{store}, cache),
		stocks: NewStockService(memStockRepo{store}, memDrugRepo{store}, cache),
	}
}

func ptr[T any](v T) *T { return &v }
