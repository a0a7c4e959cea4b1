package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OrganizerResponse struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	OrganizationName string    `json:"organizationName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	IsVerified       bool      `json:"isVerified"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromOrganizer(rm *readmodel.OrganizerRM) *OrganizerResponse {
	return &OrganizerResponse{
		ID:               rm.ID,
		FirstName:        rm.FirstName,
		LastName:         rm.LastName,
		OrganizationName: rm.OrganizationName,
		Email:            rm.Email,
		Phone:            rm.Phone,
		Address:          rm.Address,
		IsVerified:       rm.IsVerified,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromOrganizers(rms []*readmodel.OrganizerRM) []*OrganizerResponse {
	out := make([]*OrganizerResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromOrganizer(rm))
	}
	return out
}
