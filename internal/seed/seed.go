// Package seed loads a drug catalog from CSV.
//
// The first row is a header. name and code are required columns; drug_type,
// unit_type, detail, usage, slang_food and side_effect are optional. When
// amount, unit_price and expired are all present and non-empty, the drug is
// created with that initial lot.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"pharmastock/internal/model"
	"pharmastock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gorm.io/datatypes"
)

const (
	EncodingUTF8       = "utf8"
	EncodingWindows874 = "windows-874"
)

// RowError reports a rejected line; Line is 1-based and counts the header.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

type Result struct {
	Inserted int
	Skipped  int
	Rejected []RowError
}

// Reader wraps r with a decoder for the named encoding.
func Reader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
		return r, nil
	case EncodingWindows874, "tis-620", "cp874":
		return transform.NewReader(r, charmap.Windows874.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Load inserts every row whose code is not in the catalog yet. Rows with bad
// values are collected in Result.Rejected and do not stop the load.
func Load(ctx context.Context, repo repository.DrugRepository, r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		// Excel prepends a BOM to UTF-8 exports.
		h = strings.TrimPrefix(h, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "code"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	res := &Result{}
	seen := make(map[string]bool)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Line: line, Err: err})
			continue
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		drug, lot, err := parseRow(get)
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Line: line, Err: err})
			continue
		}
		if seen[drug.Code] {
			res.Skipped++
			continue
		}
		seen[drug.Code] = true

		_, err = repo.FindByCode(ctx, drug.Code)
		switch {
		case err == nil:
			res.Skipped++
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return res, fmt.Errorf("line %d: %w", line, err)
		}

		if err := repo.Create(ctx, drug, lot); err != nil {
			return res, fmt.Errorf("line %d: %w", line, err)
		}
		res.Inserted++
	}

	log.Info().
		Int("inserted", res.Inserted).
		Int("skipped", res.Skipped).
		Int("rejected", len(res.Rejected)).
		Msg("catalog seed finished")
	return res, nil
}

func parseRow(get func(string) string) (*model.Drug, *model.StockLot, error) {
	name, code := get("name"), get("code")
	if name == "" || code == "" {
		return nil, nil, errors.New("name and code are required")
	}
	drugType := model.DrugType(strings.ToLower(get("drug_type")))
	switch drugType {
	case "":
		drugType = model.DrugTypeDrug
	case model.DrugTypeDrug, model.DrugTypeHerb:
	default:
		return nil, nil, fmt.Errorf("drug_type %q must be drug or herb", drugType)
	}

	now := time.Now()
	d := &model.Drug{
		DrugID:     uuid.New(),
		Name:       name,
		Code:       code,
		DrugType:   drugType,
		UnitType:   get("unit_type"),
		Detail:     optional(get("detail")),
		Usage:      optional(get("usage")),
		SlangFood:  optional(get("slang_food")),
		SideEffect: optional(get("side_effect")),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	amount, price, expired := get("amount"), get("unit_price"), get("expired")
	if amount == "" || price == "" || expired == "" {
		return d, nil, nil
	}
	n, err := strconv.Atoi(amount)
	if err != nil || n < 0 {
		return nil, nil, fmt.Errorf("amount %q must be a non-negative integer", amount)
	}
	p, err := decimal.NewFromString(price)
	if err != nil || p.IsNegative() {
		return nil, nil, fmt.Errorf("unit_price %q must be a non-negative number", price)
	}
	exp, err := time.Parse("2006-01-02", expired)
	if err != nil {
		return nil, nil, fmt.Errorf("expired %q must be YYYY-MM-DD", expired)
	}
	lot := &model.StockLot{
		StockID:   uuid.New(),
		DrugID:    d.DrugID,
		Amount:    n,
		UnitPrice: p,
		Expired:   datatypes.Date(exp),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d, lot, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
