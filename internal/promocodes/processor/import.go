package processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ImportSkip describes a CSV row that was not imported
type ImportSkip struct {
	Line   int    `json:"line"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason"`
}

// ImportResult summarises a promo code import
type ImportResult struct {
	Imported []store.PromoCode `json:"imported"`
	Skipped  []ImportSkip      `json:"skipped"`
}

// ImportPromoCodes creates codes from a CSV with the header
// code,description,expirationDate,capacity. The first row is always skipped.
// Expiry dates (YYYY-MM-DD) end at 23:59:59 UTC; an unparsable capacity becomes 1.
// Incomplete rows and codes that already exist are reported as skipped.
func (p *PromoCodeProcessor) ImportPromoCodes(ctx context.Context, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}

	result := ImportResult{Imported: []store.PromoCode{}, Skipped: []ImportSkip{}}
	candidates := 0

	for i, row := range rows {
		line := i + 1
		if i == 0 || isBlankRow(row) {
			continue
		}
		if len(row) < 4 || anyBlank(row[:4]) {
			result.Skipped = append(result.Skipped, ImportSkip{Line: line, Reason: "missing required columns"})
			continue
		}

		code := store.NormalizePromoCode(row[0])
		expiresAt, err := endOfDay(row[2])
		if err != nil {
			result.Skipped = append(result.Skipped, ImportSkip{Line: line, Code: code, Reason: "invalid expiration date"})
			continue
		}
		maxUses, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || maxUses <= 0 {
			maxUses = 1
		}
		candidates++

		promo, err := p.CreatePromoCode(ctx, CreatePromoCodeRequest{
			Code:        code,
			Description: strings.TrimSpace(row[1]),
			ExpiresAt:   &expiresAt,
			MaxUses:     maxUses,
		})
		if err != nil {
			if errors.Is(err, ErrPromoCodeExists) {
				result.Skipped = append(result.Skipped, ImportSkip{Line: line, Code: code, Reason: "promo code already exists"})
				continue
			}
			return result, err
		}
		result.Imported = append(result.Imported, promo)
	}

	if candidates == 0 {
		return result, fmt.Errorf("%w: no valid promo codes found", ErrInvalidImportFile)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "imported", Value: len(result.Imported)},
		observability.Field{Key: "skipped", Value: len(result.Skipped)},
	)
	p.logger.Info(ctx, "promo codes imported")
	return result, nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func anyBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
