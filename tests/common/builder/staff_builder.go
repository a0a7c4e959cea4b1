//go:build unit || e2e

package builder

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		Email:     "admin@eventease.co.ke",
		FirstName: "Amina",
		LastName:  "Odhiambo",
		Role:      "admin",
	}
}

func (b *StaffBuilder) WithEmail(email string) *StaffBuilder {
	b.Email = email
	return b
}

func (b *StaffBuilder) WithRole(role string) *StaffBuilder {
	b.Role = role
	return b
}

func (b *StaffBuilder) BuildReadModel() *readmodel.StaffRM {
	return &readmodel.StaffRM{
		ID:        uuid.New(),
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Role:      b.Role,
		CreatedAt: time.Now(),
	}
}
