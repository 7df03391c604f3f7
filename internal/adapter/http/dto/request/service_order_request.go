package request

import (
	"strings"

	"os_service_api/internal/usecase"
)

type ServiceLineRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type PartLineRequest struct {
	PartID   string `json:"part_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateServiceOrderRequest is the OS creation payload. Prices never come
// from the caller; only catalog references and quantities do.
type CreateServiceOrderRequest struct {
	CustomerID  string               `json:"customer_id" binding:"required"`
	VehicleID   string               `json:"vehicle_id" binding:"required"`
	MechanicID  string               `json:"mechanic_id"`
	Description string               `json:"description"`
	Services    []ServiceLineRequest `json:"services"`
	Parts       []PartLineRequest    `json:"parts"`
}

func (r CreateServiceOrderRequest) ToCommand() usecase.CreateServiceOrderCommand {
	cmd := usecase.CreateServiceOrderCommand{
		CustomerID:  strings.TrimSpace(r.CustomerID),
		VehicleID:   strings.TrimSpace(r.VehicleID),
		MechanicID:  strings.TrimSpace(r.MechanicID),
		Description: strings.TrimSpace(r.Description),
	}
	for _, line := range r.Services {
		cmd.Services = append(cmd.Services, usecase.ServiceLineInput{
			ServiceID: strings.TrimSpace(line.ServiceID),
			Quantity:  line.Quantity,
		})
	}
	for _, line := range r.Parts {
		cmd.Parts = append(cmd.Parts, usecase.PartLineInput{
			PartID:   strings.TrimSpace(line.PartID),
			Quantity: line.Quantity,
		})
	}
	return cmd
}

// UpdateStatusRequest drives a lifecycle transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
	Actor  string `json:"actor"`
}
