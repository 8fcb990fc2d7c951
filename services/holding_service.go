package services

import (
	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

// HoldingService handles business logic for portfolio holdings
type HoldingService struct {
	holdings *repositories.ContentRepository[models.Holding]
}

// NewHoldingService creates a new holding service instance
func NewHoldingService() *HoldingService {
	return &HoldingService{holdings: repositories.NewHoldingRepository()}
}

// List retrieves all holdings ordered by ticker
func (s *HoldingService) List() ([]models.Holding, error) {
	return s.holdings.FindAll()
}

// Get retrieves a single holding
func (s *HoldingService) Get(id string) (*models.Holding, error) {
	holding, err := s.holdings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, ErrNotFound
	}
	return holding, nil
}

// Create adds a new holding
func (s *HoldingService) Create(req dto.HoldingRequest) (*models.Holding, error) {
	holding := models.Holding{
		Ticker:        req.Ticker,
		CompanyName:   req.CompanyName,
		Sector:        req.Sector,
		Shares:        req.Shares,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Notes:         req.Notes,
	}

	created, err := s.holdings.Create(&holding)
	if err != nil {
		return nil, err
	}

	RevalidatePages("holdings", created.ID)
	return created, nil
}

// Update modifies a holding
func (s *HoldingService) Update(id string, req dto.HoldingRequest) error {
	existing, err := s.holdings.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.holdings.UpdateFields(id, map[string]any{
		"ticker":         req.Ticker,
		"company_name":   req.CompanyName,
		"sector":         req.Sector,
		"shares":         req.Shares,
		"purchase_price": req.PurchasePrice,
		"purchase_date":  req.PurchaseDate,
		"notes":          req.Notes,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("holdings", id)
	return nil
}

// Delete removes a holding
func (s *HoldingService) Delete(id string) error {
	ok, err := s.holdings.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("holdings", id)
	return nil
}
