package Controllers

import (
	"fmt"
	"net/http"

	"DoctorsPortal/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExportBookings writes the full booking ledger to an Excel sheet for
// the admin dashboard.
func (api *API) ExportBookings(c *gin.Context) {
	bookings, err := api.Bookings.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Treatment",
		"C1": "Slot",
		"D1": "Patient",
		"E1": "Email",
		"F1": "Fee",
		"G1": "Paid",
		"H1": "Transaction",
	}
	file := excelize.NewFile()
	sheet := "Bookings"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i, booking := range bookings {
		appendRowBooking(sheet, file, i, booking)
	}

	filename := "./Bookings.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Error().Err(err).Msg("failed to save bookings export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export bookings"})
		return
	}
	c.File(filename)
}

func appendRowBooking(sheet string, file *excelize.File, index int, b Models.Booking) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), b.Date)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), b.Treatment)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), b.Slot)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), b.PatientName)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), b.PatientEmail)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), b.Fee)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), b.Paid)
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), b.TransactionID)
}
