package sale

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
)

// Station-local time drives shift bucketing.
var stationLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.UTC
	}
	return loc
}()

type SaleServiceImpl struct {
	saleRepository sale.SaleRepository
	userRepository user.UserRepository
}

func NewSaleService(saleRepository sale.SaleRepository, userRepository user.UserRepository) sale.SaleService {
	return &SaleServiceImpl{
		saleRepository: saleRepository,
		userRepository: userRepository,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// bucketShift maps a local hour to a shift: 05–12 morning, 13–20 evening,
// the rest night.
func bucketShift(t time.Time) string {
	hour := t.In(stationLocation).Hour()
	switch {
	case hour >= 5 && hour < 13:
		return sale.ShiftMorning
	case hour >= 13 && hour < 21:
		return sale.ShiftEvening
	default:
		return sale.ShiftNight
	}
}

// CreateSale implements sale.SaleService.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	staff, err := s.userRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to look up staff: %w", err)
	}

	adminID := staff.ID
	if staff.AdminID != nil {
		adminID = *staff.AdminID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	quantity := round2(req.ClosingReading - req.OpeningReading)
	if quantity < 0 {
		return sale.SaleResponse{}, sale.ErrNegativeQuantity
	}

	shift := req.Shift
	if shift == "" {
		shift = bucketShift(time.Now())
	}

	newSale := sale.Sale{
		AdminID:        adminID,
		StaffID:        staff.ID,
		Date:           date,
		Shift:          shift,
		FuelType:       req.FuelType,
		NozzleID:       req.NozzleID,
		OpeningReading: req.OpeningReading,
		ClosingReading: req.ClosingReading,
		Quantity:       quantity,
		Rate:           req.Rate,
		Amount:         round2(quantity * req.Rate),
		PaymentMode:    req.PaymentMode,
		CustomerID:     req.CustomerID,
	}

	created, err := s.saleRepository.Create(ctx, newSale)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	resp := sale.ToResponse(created)
	resp.StaffName = &staff.Username
	return resp, nil
}

// GetMySales implements sale.SaleService.
func (s *SaleServiceImpl) GetMySales(ctx context.Context, staffID string, filter sale.ListFilter) (sale.ListSalesResponse, error) {
	filter.Normalize()

	sales, total, err := s.saleRepository.ListByStaff(ctx, staffID, filter)
	if err != nil {
		return sale.ListSalesResponse{}, err
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, row := range sales {
		responses = append(responses, sale.ToResponse(row))
	}

	return sale.ListSalesResponse{
		Sales:   responses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// ListSales implements sale.SaleService.
func (s *SaleServiceImpl) ListSales(ctx context.Context, adminID string, filter sale.ListFilter) (sale.ListSalesResponse, error) {
	filter.Normalize()

	sales, total, err := s.saleRepository.List(ctx, filter, adminID)
	if err != nil {
		return sale.ListSalesResponse{}, err
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, row := range sales {
		responses = append(responses, sale.ToResponse(row))
	}

	return sale.ListSalesResponse{
		Sales:   responses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}
