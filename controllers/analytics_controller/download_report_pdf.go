package analytics_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// DownloadReportPDF godoc
// @Summary Download analytics report PDF
// @Description Generates a PDF summary of the current analytics run: spend totals, budget variance per category, top vendors and triggered alerts.
// @Tags Analytics
// @Produce application/pdf
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {string} string "PDF file"
// @Failure 422 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/report [get]
func DownloadReportPDF(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[analytics.report] start user=%s", userID)

	result, err := runPipeline(c)
	if err != nil {
		respondPipelineError(c, "analytics.report", err)
		return
	}

	cfg, err := loadAlertConfig(userID)
	if err != nil {
		cfg = models.DefaultAlertConfig()
	}
	alerts := analytics.CheckAlerts(result, cfg)

	storeName := c.Query("store_id")
	if storeName == "" || storeName == "all" {
		storeName = "All Stores"
	}

	buf := generateReportPDF(result, alerts, storeName)
	if buf.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	filename := fmt.Sprintf("sanpeggios-report-%s.pdf", time.Now().Format("2006-01-02"))
	log.Printf("[analytics.report] done user=%s bytes=%d", userID, buf.Len())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// generateReportPDF renders the analytics summary as a one-page report.
func generateReportPDF(result *models.AnalyticsResult, alerts []models.Alert, storeName string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("PROCUREMENT ANALYTICS REPORT", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("SANPEGGIO'S PIZZA", props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(storeName, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated: %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Summary Section
	summary := result.Summary
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("SUMMARY", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	summaryLines := []struct {
		label string
		value string
	}{
		{"Total Spend", fmt.Sprintf("$%.2f", summary.TotalSpend)},
		{"Invoice Records", fmt.Sprintf("%d", summary.TotalRecords)},
		{"Date Range", fmt.Sprintf("%s to %s",
			summary.DateStart.Format("Jan 02, 2006"), summary.DateEnd.Format("Jan 02, 2006"))},
		{"Categories", fmt.Sprintf("%d", summary.UniqueCategories)},
		{"Vendors", fmt.Sprintf("%d", summary.UniqueVendors)},
		{"Price Spikes", fmt.Sprintf("%d", summary.SpikeCount)},
	}
	for _, line := range summaryLines {
		line := line
		m.Row(5, func() {
			m.Col(4, func() {
				m.Text(line.label, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
			m.Col(8, func() {
				m.Text(line.value, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Budget Variance Table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("BUDGET VARIANCE BY CATEGORY", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Actual", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Projected", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Variance", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, cat := range sortedCategories(result.BudgetVariance) {
		variance := result.BudgetVariance[cat]
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(cat, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", variance.Actual), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", variance.Projected), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%+.1f%%", variance.VariancePercent), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Top Vendors
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("TOP VENDORS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Spend", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Share", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	vendors := result.SupplyConcentration.Vendors
	if len(vendors) > 5 {
		vendors = vendors[:5]
	}
	for _, vendor := range vendors {
		vendor := vendor
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(vendor.Vendor, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", vendor.Spend), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.1f%%", vendor.SharePercent), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Concentration risk: %s (HHI %.0f, top 5 = %.1f%%)",
				result.SupplyConcentration.ConcentrationRisk,
				result.SupplyConcentration.HHI,
				result.SupplyConcentration.Top5Share), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Alerts
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("ALERTS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	if len(alerts) == 0 {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("No alerts triggered.", props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}
	for _, alert := range alerts {
		alert := alert
		m.Row(5, func() {
			m.Col(2, func() {
				m.Text(alert.Severity, props.Text{
					Size:  9,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
			m.Col(10, func() {
				m.Text(alert.Message, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Sanpeggio's PFG invoice analytics", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	// Output to buffer
	buf, err := m.Output()
	if err != nil {
		log.Printf("[analytics.report] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}

func sortedCategories(m map[string]models.BudgetVariance) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
