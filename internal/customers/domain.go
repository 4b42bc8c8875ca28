package customers

import "github.com/campo-erp/campo-erp/internal/model"

// CreateCustomerInput describes a new customer record.
type CreateCustomerInput struct {
	Name   string               `json:"name" validate:"required"`
	Phone  string               `json:"phone"`
	City   string               `json:"city"`
	Status model.CustomerStatus `json:"status"`
}
