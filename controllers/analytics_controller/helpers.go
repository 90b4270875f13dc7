package analytics_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	analytics_cache "github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/cache"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// ════════════════════════════════════════════════════════════
// Shared request plumbing for the analytics endpoints
// ════════════════════════════════════════════════════════════

// loadLines fetches the user's invoice records (optionally scoped to one
// store), normalized into the analytics shape. Results are cached for
// analytics_cache.TTL; any upload or delete invalidates the cache.
func loadLines(c *gin.Context) ([]models.InvoiceLine, error) {
	userID, _ := middleware.GetUserIDFromContext(c)
	storeID := c.Query("store_id")
	if storeID == "" {
		storeID = "all"
	}

	cacheKey := fmt.Sprintf("%s|%s", userID, storeID)
	if cached, ok := analytics_cache.GetRecords(cacheKey); ok {
		return cached, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Where("user_id = ?", userID)
	if storeID != "all" {
		query = query.Where("store_id = ?", storeID)
	}

	var records []models.InvoiceRecord
	if err := query.Order("invoice_date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	rows := make([]models.RawInvoiceRow, 0, len(records))
	for i := range records {
		rows = append(rows, records[i].ToRawRow())
	}
	lines := analytics.NormalizeAll(rows)

	analytics_cache.SetRecords(cacheKey, lines)
	return lines, nil
}

// parseOptions builds the run options from query params, falling back to
// the pipeline defaults for anything unset or malformed.
func parseOptions(c *gin.Context) models.AnalyticsOptions {
	opts := models.AnalyticsOptions{
		VolatilityWindow: analytics.DefaultVolatilityWindow,
		SpikeThreshold:   analytics.DefaultSpikeThreshold,
	}
	if w, err := strconv.Atoi(c.Query("window")); err == nil && w > 0 {
		opts.VolatilityWindow = w
	}
	if t, err := strconv.ParseFloat(c.Query("threshold"), 64); err == nil && t > 0 {
		opts.SpikeThreshold = t
	}
	opts.Filters = models.AnalyticsFilters{
		StartDate:  parseDate(c.Query("start_date")),
		EndDate:    parseDate(c.Query("end_date")),
		Category:   c.Query("category"),
		Vendor:     c.Query("vendor"),
		MinPrice:   parsePrice(c.Query("min_price")),
		MaxPrice:   parsePrice(c.Query("max_price")),
		SpikesOnly: c.Query("spikes_only") == "true",
	}
	return opts
}

// runPipeline is the cached RunFullAnalytics every endpoint shares: one
// result per user/store/options combination within the cache TTL.
func runPipeline(c *gin.Context) (*models.AnalyticsResult, error) {
	userID, _ := middleware.GetUserIDFromContext(c)
	storeID := c.Query("store_id")
	if storeID == "" {
		storeID = "all"
	}
	opts := parseOptions(c)

	cacheKey := fmt.Sprintf("%s|%s|%s", userID, storeID, optionsKey(opts))
	if cached, ok := analytics_cache.GetResult(cacheKey); ok {
		return cached, nil
	}

	lines, err := loadLines(c)
	if err != nil {
		return nil, err
	}

	result, err := analytics.RunFullAnalytics(lines, opts)
	if err != nil {
		return nil, err
	}

	analytics_cache.SetResult(cacheKey, result)
	return result, nil
}

func optionsKey(opts models.AnalyticsOptions) string {
	f := opts.Filters
	return fmt.Sprintf("w%d|t%g|%s|%s|%s|%s|%s|%s|%v",
		opts.VolatilityWindow, opts.SpikeThreshold,
		dateKey(f.StartDate), dateKey(f.EndDate),
		f.Category, f.Vendor,
		priceKey(f.MinPrice), priceKey(f.MaxPrice),
		f.SpikesOnly)
}

func dateKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func priceKey(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// respondPipelineError maps pipeline failures to the right status: an
// empty dataset is the caller's problem, everything else is ours.
func respondPipelineError(c *gin.Context, scope string, err error) {
	if errors.Is(err, analytics.ErrEmptyDataset) {
		log.Printf("[%s] empty dataset", scope)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "No invoice records match the requested filters"))
		return
	}
	log.Printf("[%s] ERROR err=%v", scope, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to run analytics"))
}

// alertConfigKey is the Redis key for a user's saved thresholds.
func alertConfigKey(userID string) string {
	return fmt.Sprintf("alert-config:%s", userID)
}
