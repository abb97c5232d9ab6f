package response

import (
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromOfferView(view *queries.OfferView) (*OfferResponse, error) {
	resp := &OfferResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromOfferViews(views []*queries.OfferView) ([]*OfferResponse, error) {
	resps := make([]*OfferResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromOfferView(v)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
