package response

import (
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractItemResponse struct {
	ID            uuid.UUID `json:"id"`
	EquipmentID   uuid.UUID `json:"equipmentId"`
	EquipmentName string    `json:"equipmentName"`
	Quantity      int       `json:"quantity"`
	DailyRate     string    `json:"dailyRate" example:"80.00"`
	Subtotal      string    `json:"subtotal" example:"480.00"`
	Notes         *string   `json:"notes,omitempty"`
}

type ContractResponse struct {
	ID                 uuid.UUID              `json:"id"`
	ContractNumber     string                 `json:"contractNumber" example:"CON-2025-0001"`
	CustomerID         uuid.UUID              `json:"customerId"`
	CustomerName       string                 `json:"customerName"`
	CreatedBy          uuid.UUID              `json:"createdBy"`
	CreatedByName      string                 `json:"createdByName"`
	ApprovedBy         *uuid.UUID             `json:"approvedBy,omitempty"`
	ApprovedByName     *string                `json:"approvedByName,omitempty"`
	StartDate          string                 `json:"startDate" example:"2025-03-01"`
	EndDate            string                 `json:"endDate" example:"2025-03-03"`
	Status             string                 `json:"status" example:"draft"`
	TotalValue         string                 `json:"totalValue" example:"480.00"`
	TotalDays          int                    `json:"totalDays" example:"3"`
	Notes              *string                `json:"notes,omitempty"`
	CancellationReason *string                `json:"cancellationReason,omitempty"`
	Items              []ContractItemResponse `json:"items"`
	ApprovedAt         *time.Time             `json:"approvedAt,omitempty"`
	ActivatedAt        *time.Time             `json:"activatedAt,omitempty"`
	FinishedAt         *time.Time             `json:"finishedAt,omitempty"`
	CancelledAt        *time.Time             `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

type ContractListItemResponse struct {
	ID             uuid.UUID `json:"id"`
	ContractNumber string    `json:"contractNumber"`
	CustomerID     uuid.UUID `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	Status         string    `json:"status"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	TotalValue     string    `json:"totalValue"`
	TotalDays      int       `json:"totalDays"`
	ItemsCount     int       `json:"itemsCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ContractListResponse struct {
	Items      []ContractListItemResponse `json:"items"`
	Total      int                        `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"pageSize"`
	TotalPages int                        `json:"totalPages"`
}

type CalculatedItemResponse struct {
	EquipmentID   uuid.UUID `json:"equipmentId"`
	EquipmentName string    `json:"equipmentName"`
	Quantity      int       `json:"quantity"`
	DailyRate     string    `json:"dailyRate"`
	Subtotal      string    `json:"subtotal"`
}

type ContractCalculationResponse struct {
	StartDate  string                   `json:"startDate"`
	EndDate    string                   `json:"endDate"`
	TotalDays  int                      `json:"totalDays"`
	TotalValue string                   `json:"totalValue"`
	Items      []CalculatedItemResponse `json:"items"`
}

func FromContractView(v *queries.ContractView) *ContractResponse {
	items := make([]ContractItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = ContractItemResponse{
			ID:            it.ID,
			EquipmentID:   it.EquipmentID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     money(it.DailyRate),
			Subtotal:      money(it.Subtotal),
			Notes:         it.Notes,
		}
	}

	return &ContractResponse{
		ID:                 v.ID,
		ContractNumber:     v.Number,
		CustomerID:         v.CustomerID,
		CustomerName:       v.CustomerName,
		CreatedBy:          v.CreatedByID,
		CreatedByName:      v.CreatedByName,
		ApprovedBy:         v.ApprovedByID,
		ApprovedByName:     v.ApprovedByName,
		StartDate:          v.StartDate.Format(contract.DateLayout),
		EndDate:            v.EndDate.Format(contract.DateLayout),
		Status:             v.Status,
		TotalValue:         money(v.TotalValue),
		TotalDays:          v.TotalDays,
		Notes:              v.Notes,
		CancellationReason: v.CancellationReason,
		Items:              items,
		ApprovedAt:         v.ApprovedAt,
		ActivatedAt:        v.ActivatedAt,
		FinishedAt:         v.FinishedAt,
		CancelledAt:        v.CancelledAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromContractPage(p *queries.ContractPage) *ContractListResponse {
	items := make([]ContractListItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = ContractListItemResponse{
			ID:             it.ID,
			ContractNumber: it.Number,
			CustomerID:     it.CustomerID,
			CustomerName:   it.CustomerName,
			Status:         it.Status,
			StartDate:      it.StartDate.Format(contract.DateLayout),
			EndDate:        it.EndDate.Format(contract.DateLayout),
			TotalValue:     money(it.TotalValue),
			TotalDays:      it.TotalDays,
			ItemsCount:     it.ItemsCount,
			CreatedAt:      it.CreatedAt,
		}
	}

	return &ContractListResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func FromContractCalculation(c *queries.ContractCalculation) *ContractCalculationResponse {
	items := make([]CalculatedItemResponse, len(c.Items))
	for i, it := range c.Items {
		items[i] = CalculatedItemResponse{
			EquipmentID:   it.EquipmentID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     money(it.DailyRate),
			Subtotal:      money(it.Subtotal),
		}
	}

	return &ContractCalculationResponse{
		StartDate:  c.StartDate.Format(contract.DateLayout),
		EndDate:    c.EndDate.Format(contract.DateLayout),
		TotalDays:  c.TotalDays,
		TotalValue: money(c.TotalValue),
		Items:      items,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
