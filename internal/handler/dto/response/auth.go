package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Staff StaffResponse `json:"staff"`
}

func FromStaff(rm *readmodel.StaffRM) StaffResponse {
	return StaffResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		FirstName: rm.FirstName,
		LastName:  rm.LastName,
		Role:      rm.Role,
		CreatedAt: rm.CreatedAt,
	}
}
