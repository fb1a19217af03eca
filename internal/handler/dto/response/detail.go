package response

import (
	"hotel-pms/internal/usecase/commands"

	"github.com/google/uuid"
)

type DetailTransitionResponse struct {
	ID         uuid.UUID `json:"id"`
	PriceCents int64     `json:"price_cents"`
	Billable   bool      `json:"billable"`
	Lifecycle  string    `json:"lifecycle"`
}

func FromDetailTransition(result *commands.DetailTransitionResult) DetailTransitionResponse {
	return DetailTransitionResponse{
		ID:         result.ID,
		PriceCents: result.PriceCents,
		Billable:   result.Billable,
		Lifecycle:  result.Lifecycle.String(),
	}
}
