package services

import (
	"context"
	"math"
	"sort"

	"github.com/ilhadomel/passeios/internal/models"
)

// ReportService folds over the booking set to produce revenue and commission
// summaries. Cancelled bookings are excluded everywhere: a cancelled sale is
// not realised revenue and earns no commission.
type ReportService struct {
	bookings  models.BookingRepo
	companies models.CompanyRepo
	sellers   models.SellerRepo
	// commissionBps is the seller commission in basis points (1000 = 10%),
	// applied uniformly to every attributed booking.
	commissionBps int64
}

func NewReportService(bookings models.BookingRepo, companies models.CompanyRepo, sellers models.SellerRepo, commissionPercent float64) *ReportService {
	return &ReportService{
		bookings:      bookings,
		companies:     companies,
		sellers:       sellers,
		commissionBps: int64(math.Round(commissionPercent * 100)),
	}
}

type CompanyReportRow struct {
	CompanyID     string       `json:"company_id"`
	CompanyName   string       `json:"company_name"`
	BookingsCount int          `json:"bookings_count"`
	Revenue       models.Cents `json:"revenue"`
}

type SellerReportRow struct {
	SellerID   string       `json:"seller_id"`
	SellerName string       `json:"seller_name"`
	SalesCount int          `json:"sales_count"`
	Revenue    models.Cents `json:"revenue"`
	Commission models.Cents `json:"commission"`
}

type PlatformReport struct {
	TotalRevenue    models.Cents       `json:"total_revenue"`
	TotalBookings   int                `json:"total_bookings"`
	TotalCommission models.Cents       `json:"total_commission"`
	ByCompany       []CompanyReportRow `json:"by_company"`
	BySeller        []SellerReportRow  `json:"by_seller"`
}

func (rs *ReportService) commission(revenue models.Cents) models.Cents {
	return revenue * models.Cents(rs.commissionBps) / 10000
}

// Platform aggregates the whole booking set for the master dashboard.
// Rows are sorted by descending revenue; ties keep first-seen order.
func (rs *ReportService) Platform(ctx context.Context) (*PlatformReport, error) {
	bookings, err := rs.bookings.List(ctx, "")
	if err != nil {
		return nil, err
	}

	report := &PlatformReport{
		ByCompany: []CompanyReportRow{},
		BySeller:  []SellerReportRow{},
	}
	companyIdx := map[string]int{}
	sellerIdx := map[string]int{}

	for _, b := range bookings {
		if b.Status == models.StatusCancelada {
			continue
		}
		report.TotalRevenue += b.TotalPrice
		report.TotalBookings++

		i, ok := companyIdx[b.CompanyID]
		if !ok {
			row := CompanyReportRow{CompanyID: b.CompanyID}
			if company, err := rs.companies.GetByID(ctx, b.CompanyID); err == nil {
				row.CompanyName = company.Name
			}
			report.ByCompany = append(report.ByCompany, row)
			i = len(report.ByCompany) - 1
			companyIdx[b.CompanyID] = i
		}
		report.ByCompany[i].BookingsCount++
		report.ByCompany[i].Revenue += b.TotalPrice

		if b.SellerID == "" {
			continue
		}
		seller, err := rs.sellers.GetByID(ctx, b.SellerID)
		if err != nil {
			// The attributed seller was deleted; the sale stays in the
			// company numbers but earns nobody commission.
			continue
		}
		j, ok := sellerIdx[seller.ID]
		if !ok {
			report.BySeller = append(report.BySeller, SellerReportRow{
				SellerID:   seller.ID,
				SellerName: seller.Name,
			})
			j = len(report.BySeller) - 1
			sellerIdx[seller.ID] = j
		}
		report.BySeller[j].SalesCount++
		report.BySeller[j].Revenue += b.TotalPrice
	}

	for j := range report.BySeller {
		report.BySeller[j].Commission = rs.commission(report.BySeller[j].Revenue)
		report.TotalCommission += report.BySeller[j].Commission
	}

	sort.SliceStable(report.ByCompany, func(a, b int) bool {
		return report.ByCompany[a].Revenue > report.ByCompany[b].Revenue
	})
	sort.SliceStable(report.BySeller, func(a, b int) bool {
		return report.BySeller[a].Revenue > report.BySeller[b].Revenue
	})
	return report, nil
}

// CompanySellers breaks down one company's attributed sales by seller, for
// the company dashboard.
func (rs *ReportService) CompanySellers(ctx context.Context, companyID string) ([]SellerReportRow, error) {
	if _, err := rs.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	bookings, err := rs.bookings.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := []SellerReportRow{}
	idx := map[string]int{}
	for _, b := range bookings {
		if b.Status == models.StatusCancelada || b.SellerID == "" {
			continue
		}
		seller, err := rs.sellers.GetByID(ctx, b.SellerID)
		if err != nil {
			continue
		}
		i, ok := idx[seller.ID]
		if !ok {
			rows = append(rows, SellerReportRow{SellerID: seller.ID, SellerName: seller.Name})
			i = len(rows) - 1
			idx[seller.ID] = i
		}
		rows[i].SalesCount++
		rows[i].Revenue += b.TotalPrice
	}
	for i := range rows {
		rows[i].Commission = rs.commission(rows[i].Revenue)
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Revenue > rows[b].Revenue
	})
	return rows, nil
}

// SellerSales is the seller's own summary across all companies.
func (rs *ReportService) SellerSales(ctx context.Context, sellerID string) (*SellerReportRow, error) {
	seller, err := rs.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	bookings, err := rs.bookings.List(ctx, "")
	if err != nil {
		return nil, err
	}

	row := &SellerReportRow{SellerID: seller.ID, SellerName: seller.Name}
	for _, b := range bookings {
		if b.Status == models.StatusCancelada || b.SellerID != sellerID {
			continue
		}
		row.SalesCount++
		row.Revenue += b.TotalPrice
	}
	row.Commission = rs.commission(row.Revenue)
	return row, nil
}
