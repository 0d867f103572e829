package helpers

import (
	"bytes"
	"fmt"

	"github.com/ilhadomel/passeios/internal/models"
	"github.com/phpdave11/gofpdf"
)

// VoucherSheetPDF renders a printable sheet a seller can hand out: one page
// listing the seller's voucher codes for a company, with the referral link.
func VoucherSheetPDF(seller *models.Seller, company *models.Company, vouchers []*models.Voucher, referralLink string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Vouchers de Venda")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Vendedor: %s", seller.Name))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Empresa: %s", company.Name))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Link de venda: %s", referralLink))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Codigos")
	pdf.Ln(10)

	pdf.SetFont("Courier", "", 12)
	if len(vouchers) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "Nenhum voucher gerado para esta empresa.")
		pdf.Ln(8)
	}
	for _, v := range vouchers {
		pdf.Cell(0, 8, v.Code)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render voucher sheet: %v", err)
	}
	return buf.Bytes(), nil
}
