package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmastock/internal/dto"
	"pharmastock/internal/middleware"
	"pharmastock/internal/repository"
	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// ── Fakes ────────────────────────────────────────────────────────────────────

type fakeDrugService struct {
	err      error
	created  dto.CreateDrugRequest
	updated  dto.UpdateDrugRequest
	filter   dto.DrugFilter
	searched string
	deleted  uuid.UUID
}

func (f *fakeDrugService) List(_ context.Context, filter dto.DrugFilter) ([]dto.DrugResponse, error) {
	f.filter = filter
	return []dto.DrugResponse{{Name: "Paracetamol", TotalAmount: 3}}, f.err
}

func (f *fakeDrugService) Search(_ context.Context, name string) ([]dto.DrugResponse, error) {
	f.searched = name
	if f.err != nil {
		return nil, f.err
	}
	return []dto.DrugResponse{}, nil
}

func (f *fakeDrugService) GetByID(_ context.Context, id uuid.UUID) (*dto.DrugResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DrugResponse{DrugID: id.String()}, nil
}

func (f *fakeDrugService) Create(_ context.Context, req dto.CreateDrugRequest) (*dto.DrugResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DrugResponse{DrugID: uuid.NewString(), Name: req.Name}, nil
}

func (f *fakeDrugService) Update(_ context.Context, req dto.UpdateDrugRequest) (*dto.DrugResponse, error) {
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DrugResponse{DrugID: req.DrugID}, nil
}

func (f *fakeDrugService) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = id
	return f.err
}

type fakeStockService struct {
	err  error
	sold dto.SellStockRequest
	set  dto.SetStockAmountRequest
}

func (f *fakeStockService) Create(_ context.Context, req dto.CreateStockRequest) (*dto.StockResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StockResponse{StockID: uuid.NewString(), DrugID: req.DrugID, Amount: *req.Amount}, nil
}

func (f *fakeStockService) Get(_ context.Context, id uuid.UUID) (*dto.StockResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StockResponse{StockID: id.String()}, nil
}

func (f *fakeStockService) Sell(_ context.Context, req dto.SellStockRequest) (*dto.StockResponse, error) {
	f.sold = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StockResponse{StockID: req.StockID, Amount: 70}, nil
}

func (f *fakeStockService) SetAmount(_ context.Context, req dto.SetStockAmountRequest) (*dto.StockResponse, error) {
	f.set = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StockResponse{StockID: req.StockID, Amount: *req.NewAmount}, nil
}

func (f *fakeStockService) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

// ── Helpers ──────────────────────────────────────────────────────────────────

func newEngine(drugs service.DrugService, stocks service.StockService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())

	dh := NewDrugsHandler(drugs)
	r.GET("/drugs", dh.List)
	r.GET("/drugs/search", dh.Search)
	r.GET("/drugs/:id", dh.Get)
	r.POST("/drugs", dh.Create)
	r.PATCH("/drugs/update", dh.Update)
	r.DELETE("/drugs/:id", dh.Delete)

	sh := NewStocksHandler(stocks)
	r.POST("/stocks", sh.Create)
	r.GET("/stocks/:stock_id", sh.Get)
	r.PATCH("/stocks/update", sh.Sell)
	r.PATCH("/stocks", sh.SetAmount)
	r.DELETE("/stocks/:stock_id", sh.Delete)
	return r
}

func send(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

// ── Drugs ────────────────────────────────────────────────────────────────────

func TestDrugsHandler_List(t *testing.T) {
	svc := &fakeDrugService{}
	r := newEngine(svc, &fakeStockService{})

	w := send(t, r, http.MethodGet, "/drugs?drug_type=herb", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "herb", svc.filter.DrugType)

	body := decode(t, w)
	assert.Equal(t, "drugs", body["msg"])
	assert.Len(t, body["data"], 1)

	w = send(t, r, http.MethodGet, "/drugs?drug_type=vitamin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDrugsHandler_SearchRoutesBeforeID(t *testing.T) {
	svc := &fakeDrugService{}
	r := newEngine(svc, &fakeStockService{})

	w := send(t, r, http.MethodGet, "/drugs/search?name=para", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "para", svc.searched)
	assert.Equal(t, []any{}, decode(t, w)["data"], "empty result is [] not null")
}

func TestDrugsHandler_Create(t *testing.T) {
	svc := &fakeDrugService{}
	r := newEngine(svc, &fakeStockService{})

	w := send(t, r, http.MethodPost, "/drugs",
		`{"name":"Paracetamol","code":"PCM","stock":{"amount":100,"unit_price":"1.50","expired":"2030-01-31"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, svc.created.Stock)
	assert.Equal(t, 100, *svc.created.Stock.Amount)
	assert.Equal(t, "1.5", svc.created.Stock.UnitPrice.String())
	assert.Equal(t, "drug created", decode(t, w)["msg"])
}

func TestDrugsHandler_CreateValidation(t *testing.T) {
	r := newEngine(&fakeDrugService{}, &fakeStockService{})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"code":"PCM"}`, "name"},
		{"bad drug type", `{"name":"a","code":"b","drug_type":"vitamin"}`, "drug_type"},
		{"negative stock", `{"name":"a","code":"b","stock":{"amount":-1,"unit_price":1,"expired":"2030-01-01"}}`, "amount"},
		{"negative price", `{"name":"a","code":"b","stock":{"amount":1,"unit_price":-1,"expired":"2030-01-01"}}`, "unit_price"},
		{"bad expiry", `{"name":"a","code":"b","stock":{"amount":1,"unit_price":1,"expired":"tomorrow"}}`, "expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(t, r, http.MethodPost, "/drugs", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, "validation failed", body["error"])
			assert.Contains(t, body["fields"], tt.field)
		})
	}

	w := send(t, r, http.MethodPost, "/drugs", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDrugsHandler_UpdateRequiresID(t *testing.T) {
	svc := &fakeDrugService{}
	r := newEngine(svc, &fakeStockService{})

	w := send(t, r, http.MethodPatch, "/drugs/update", `{"drugData":{"name":"x"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	id := uuid.NewString()
	w = send(t, r, http.MethodPatch, "/drugs/update", fmt.Sprintf(`{"drug_id":%q,"drugData":{"usage":"after meals"}}`, id))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, svc.updated.DrugID)
	require.NotNil(t, svc.updated.DrugData.Usage)
	assert.Nil(t, svc.updated.DrugData.Name)
}

func TestDrugsHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"validation", fmt.Errorf("%w: name is required", service.ErrValidation), http.StatusBadRequest},
		{"unexpected", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(&fakeDrugService{err: tt.err}, &fakeStockService{})
			w := send(t, r, http.MethodGet, "/drugs/"+uuid.NewString(), "")
			require.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", decode(t, w)["error"])
				assert.NotContains(t, w.Body.String(), "dial tcp")
			}
		})
	}
}

func TestDrugsHandler_BadPathID(t *testing.T) {
	svc := &fakeDrugService{}
	r := newEngine(svc, &fakeStockService{})

	assert.Equal(t, http.StatusBadRequest, send(t, r, http.MethodGet, "/drugs/123", "").Code)
	assert.Equal(t, http.StatusBadRequest, send(t, r, http.MethodDelete, "/drugs/abc", "").Code)

	id := uuid.New()
	w := send(t, r, http.MethodDelete, "/drugs/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, svc.deleted)
	assert.Equal(t, "drug deleted", decode(t, w)["msg"])
}

// ── Stocks ───────────────────────────────────────────────────────────────────

func TestStocksHandler_Sell(t *testing.T) {
	svc := &fakeStockService{}
	r := newEngine(&fakeDrugService{}, svc)
	stockID := uuid.NewString()

	w := send(t, r, http.MethodPatch, "/stocks/update", fmt.Sprintf(`{"stock_id":%q,"quantity_sold":30}`, stockID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, svc.sold.QuantitySold)

	w = send(t, r, http.MethodPatch, "/stocks/update", fmt.Sprintf(`{"stock_id":%q,"quantity_sold":0}`, stockID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = repository.ErrInsufficientStock
	w = send(t, r, http.MethodPatch, "/stocks/update", fmt.Sprintf(`{"stock_id":%q,"quantity_sold":80}`, stockID))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient stock", decode(t, w)["error"])
}

func TestStocksHandler_SetAmount(t *testing.T) {
	svc := &fakeStockService{}
	r := newEngine(&fakeDrugService{}, svc)

	w := send(t, r, http.MethodPatch, "/stocks", fmt.Sprintf(`{"drug_id":%q,"new_amount":0}`, uuid.NewString()))
	require.Equal(t, http.StatusOK, w.Code, "zero is a valid new amount")
	require.NotNil(t, svc.set.NewAmount)
	assert.Equal(t, 0, *svc.set.NewAmount)

	w = send(t, r, http.MethodPatch, "/stocks", `{"drug_id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStocksHandler_CreateGetDelete(t *testing.T) {
	svc := &fakeStockService{}
	r := newEngine(&fakeDrugService{}, svc)

	w := send(t, r, http.MethodPost, "/stocks",
		fmt.Sprintf(`{"drug_id":%q,"amount":5,"unit_price":2.5,"expired":"2030-05-01"}`, uuid.NewString()))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["stock_id"])

	w = send(t, r, http.MethodPost, "/stocks", `{"amount":5,"unit_price":2.5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := uuid.NewString()
	assert.Equal(t, http.StatusOK, send(t, r, http.MethodGet, "/stocks/"+id, "").Code)
	assert.Equal(t, http.StatusOK, send(t, r, http.MethodDelete, "/stocks/"+id, "").Code)
	assert.Equal(t, http.StatusBadRequest, send(t, r, http.MethodGet, "/stocks/nope", "").Code)

	svc.err = repository.ErrNotFound
	assert.Equal(t, http.StatusNotFound, send(t, r, http.MethodDelete, "/stocks/"+id, "").Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newEngine(&fakeDrugService{}, &fakeStockService{})

	req := httptest.NewRequest(http.MethodGet, "/drugs", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get(middleware.RequestIDHeader))
}
