package repository

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"

	"github.com/google/uuid"
)

type RateRepository struct{}

func NewRateRepository() *RateRepository {
	return &RateRepository{}
}

func (r *RateRepository) ListByDetail(ctx context.Context, tx db.DBTX, detailID, hotelID uuid.UUID) ([]reservation.RateLine, error) {
	const query = `
		SELECT adjustment_type, adjustment_value, tax_rate, price_cents, include_in_cancel_fee
		FROM reservation_rates
		WHERE detail_id = $1 AND hotel_id = $2
		ORDER BY sort_order, id`

	rows, err := tx.Query(ctx, query, detailID, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rates", err)
	}
	defer rows.Close()

	var lines []reservation.RateLine
	for rows.Next() {
		var (
			line       reservation.RateLine
			priceCents int64
		)
		err := rows.Scan(
			&line.AdjustmentType, &line.AdjustmentValue, &line.TaxRate,
			&priceCents, &line.IncludeInCancelFee,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate line", err)
		}
		price, err := reservation.NewMoney(priceCents)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rate price", err)
		}
		line.Price = price
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rates", err)
	}

	return lines, nil
}
