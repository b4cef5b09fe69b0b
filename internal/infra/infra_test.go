package infra

import (
	"bytes"
	"compress/zlib"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"pharmastock/internal/config"
	"pharmastock/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"gorm.io/datatypes"
)

func TestCircuitBreaker_Transitions(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(BreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: 10 * time.Second})
	cb.now = func() time.Time { return now }
	fail := func() error { return errors.New("redis down") }
	ok := func() error { return nil }

	assert.Equal(t, BreakerClosed, cb.State())
	require.Error(t, cb.Execute(fail))
	assert.Equal(t, BreakerClosed, cb.State())
	require.Error(t, cb.Execute(fail))
	assert.Equal(t, BreakerOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "open breaker fails fast")

	now = now.Add(10 * time.Second)
	assert.Equal(t, BreakerHalfOpen, cb.State())
	require.Error(t, cb.Execute(fail))
	assert.Equal(t, BreakerOpen, cb.State(), "a half-open failure reopens")

	now = now.Add(10 * time.Second)
	require.NoError(t, cb.Execute(ok))
	assert.Equal(t, BreakerClosed, cb.State())
	assert.Equal(t, "closed", cb.State().String())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{FailureThreshold: 2})
	fail := func() error { return errors.New("x") }

	_ = cb.Execute(fail)
	require.NoError(t, cb.Execute(func() error { return nil }))
	_ = cb.Execute(fail)
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCatalogCache_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	for name, c := range map[string]*CatalogCache{
		"nil cache":  nil,
		"nil client": NewCatalogCache(nil, nil, time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			var dest []string
			c.Set(ctx, CacheKeyDrugList, []string{"a"})
			assert.False(t, c.Get(ctx, CacheKeyDrugList, &dest))
			assert.Nil(t, dest)
			c.Invalidate(ctx, CacheKeyDrugList)
			assert.Equal(t, "disabled", c.State())
		})
	}
	assert.Equal(t, "catalog:drug:42", CacheKeyDrug("42"))
}

func newTestCache(t *testing.T) (*CatalogCache, *miniredis.Miniredis, *time.Time) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(DefaultBreakerConfig())
	cb.now = func() time.Time { return now }
	return NewCatalogCache(rdb, cb, time.Minute), mr, &now
}

func TestCatalogCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	c, mr, _ := newTestCache(t)
	key := CacheKeyDrug("d1")

	var got map[string]int
	assert.False(t, c.Get(ctx, key, &got))

	c.Set(ctx, key, map[string]int{"amount": 50})
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, 50, got["amount"])
	assert.Equal(t, time.Minute, mr.TTL(key))

	c.Invalidate(ctx, key)
	assert.False(t, mr.Exists(key))
	assert.False(t, c.Get(ctx, key, &got))
	assert.Equal(t, "closed", c.State())
}

func TestCatalogCache_InvalidationWhileBreakerOpen(t *testing.T) {
	ctx := context.Background()
	c, mr, now := newTestCache(t)
	key := CacheKeyDrug("d1")

	c.Set(ctx, key, map[string]int{"amount": 50})
	c.Set(ctx, CacheKeyDrugList, []string{"d1"})

	for i := 0; i < DefaultBreakerConfig().FailureThreshold; i++ {
		_ = c.cb.Execute(func() error { return errors.New("redis timeout") })
	}
	require.Equal(t, "open", c.State())

	// the delete cannot reach Redis, so the entry is still there
	c.Invalidate(ctx, key)
	require.True(t, mr.Exists(key))

	var got map[string]int
	assert.False(t, c.Get(ctx, key, &got))

	*now = now.Add(DefaultBreakerConfig().OpenTimeout + time.Second)
	assert.False(t, c.Get(ctx, key, &got), "old entry is never served after a lost invalidation")
	assert.False(t, mr.Exists(key))
	assert.False(t, mr.Exists(CacheKeyDrugList), "every catalog key is flushed")
	assert.Equal(t, "closed", c.State())

	c.Set(ctx, key, map[string]int{"amount": 70})
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, 70, got["amount"])
}

func TestCatalogCache_StaleCacheDropsWrites(t *testing.T) {
	ctx := context.Background()
	c, mr, _ := newTestCache(t)
	c.stale.Add(1)

	c.Set(ctx, CacheKeyDrugList, []string{"d1"})
	assert.False(t, mr.Exists(CacheKeyDrugList))

	var got []string
	assert.False(t, c.Get(ctx, CacheKeyDrugList, &got))
	assert.Zero(t, c.stale.Load())
}

func TestNewRedis_EmptyURLDisables(t *testing.T) {
	rdb, err := NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, rdb)

	_, err = NewRedis("not a url")
	assert.Error(t, err)
}

func TestRenderStockReport(t *testing.T) {
	drugID := uuid.New()
	drugs := []model.Drug{
		{
			DrugID: drugID, Name: "Paracetamol 500mg", Code: "PCM500", UnitType: "tablet",
			Stocks: []model.StockLot{
				{StockID: uuid.New(), DrugID: drugID, Amount: 100, UnitPrice: decimal.RequireFromString("1.50"),
					Expired: datatypes.Date(time.Date(2030, 6, 30, 0, 0, 0, 0, time.UTC))},
			},
		},
		{DrugID: uuid.New(), Name: "A very long herbal remedy name that will not fit in the column", Code: "H1"},
	}

	pdf, err := RenderStockReport("Pharmacy stock report", drugs, time.Now(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	empty, err := RenderStockReport("Empty", nil, time.Now(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
}

func TestRenderStockReport_ThaiText(t *testing.T) {
	font, err := LoadReportFont(filepath.Join("testdata", "DejaVuSansCondensed.ttf"), "")
	require.NoError(t, err)
	require.NotNil(t, font)
	assert.Equal(t, font.Regular, font.Bold, "bold falls back to the regular face")

	drugID := uuid.New()
	drugs := []model.Drug{{
		DrugID: drugID, Name: "พาราเซตามอล", Code: "PCM500", UnitType: "เม็ด",
		Stocks: []model.StockLot{
			{StockID: uuid.New(), DrugID: drugID, Amount: 20, UnitPrice: decimal.RequireFromString("2.00"),
				Expired: datatypes.Date(time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC))},
		},
	}}

	pdf, err := RenderStockReport("Stock report", drugs, time.Now(), font)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	content := inflateStreams(t, pdf)
	assert.Contains(t, content, utf16BE(t, "พาราเซตามอล"), "drug name is written as Unicode")
	assert.Contains(t, content, utf16BE(t, "เม็ด"), "unit is written as Unicode")
}

func TestLoadReportFont(t *testing.T) {
	font, err := LoadReportFont("", "")
	require.NoError(t, err)
	assert.Nil(t, font)

	_, err = LoadReportFont(filepath.Join("testdata", "missing.ttf"), "")
	assert.Error(t, err)

	_, err = LoadReportFont(filepath.Join("testdata", "DejaVuSansCondensed.ttf"), filepath.Join("testdata", "missing-bold.ttf"))
	assert.Error(t, err)
}

// inflateStreams concatenates every stream in a PDF, inflating the compressed ones.
func inflateStreams(t *testing.T, pdf []byte) string {
	t.Helper()
	var out bytes.Buffer
	for _, part := range bytes.Split(pdf, []byte("stream\n"))[1:] {
		end := bytes.Index(part, []byte("endstream"))
		if end < 0 {
			continue
		}
		zr, err := zlib.NewReader(bytes.NewReader(part[:end]))
		if err != nil {
			out.Write(part[:end])
			continue
		}
		b, _ := io.ReadAll(zr)
		out.Write(b)
	}
	return out.String()
}

func utf16BE(t *testing.T, s string) string {
	t.Helper()
	enc, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().String(s)
	require.NoError(t, err)
	return enc
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "ยาแ…", truncate("ยาแก้ไอ", 4), "counts runes, not bytes")
}

func TestMailer_DisabledWithoutHost(t *testing.T) {
	m := NewMailer(&config.Config{SMTPPort: 587})
	err := m.Send("a@example.com", "s", "b", Attachment{Filename: "r.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})
	require.ErrorIs(t, err, ErrMailerDisabled)
}
