package upload_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	analytics_cache "github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/cache"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/ingest"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

const maxUploadBytes = 25 << 20 // 25 MB

// UploadInvoices godoc
// @Summary Upload a PFG invoice CSV
// @Description Parses a multipart CSV export, routes each row to a store by ship-to address (or the store_id form field), deduplicates against existing records on (invoice number, invoice date, product code) and bulk-inserts the rest.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PFG invoice CSV export"
// @Param store_id formData string false "Force all rows to this store instead of address matching"
// @Success 201 {object} models.ApiResponse{data=models.Upload}
// @Failure 400 {object} models.ApiResponse "Missing or unparsable file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /uploads [post]
func UploadInvoices(c *gin.Context) {
	userIDStr, _ := middleware.GetUserIDFromContext(c)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "CSV file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File too large (25 MB max)"))
		return
	}
	log.Printf("[upload.create] start user=%s file=%s size=%d", userIDStr, fileHeader.Filename, fileHeader.Size)

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[upload.create] ERROR open multipart file err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read file"))
		return
	}
	defer file.Close()

	rows, err := ingest.ParseCSV(file)
	if err != nil {
		if err == ingest.ErrNoData {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No data rows found in file"))
			return
		}
		log.Printf("[upload.create] ERROR parse csv err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unparsable CSV file"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Store routing: explicit store_id wins, address matching otherwise.
	forcedStore := c.PostForm("store_id")
	var matcher *ingest.StoreMatcher
	if forcedStore == "" {
		var stores []models.Store
		if err := config.Gorm.WithContext(ctx).Find(&stores).Error; err != nil {
			log.Printf("[upload.create] ERROR load stores err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
		matcher = ingest.NewStoreMatcher(stores)
	}

	// Existing dedupe keys for this user.
	existing, err := loadDedupeKeys(userID)
	if err != nil {
		log.Printf("[upload.create] ERROR load dedupe keys err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	upload := models.Upload{
		UserID:   userID,
		StoreID:  forcedStore,
		Filename: fileHeader.Filename,
		FileSize: fileHeader.Size,
	}
	if upload.StoreID == "" {
		upload.StoreID = "multi"
	}
	if err := config.Gorm.WithContext(ctx).Create(&upload).Error; err != nil {
		log.Printf("[upload.create] ERROR create upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	records := make([]models.InvoiceRecord, 0, len(rows))
	duplicates := 0
	unassigned := 0
	for _, row := range rows {
		storeID := forcedStore
		if storeID == "" {
			storeID = matcher.Identify(row)
		}
		if storeID == "" {
			unassigned++
			continue
		}

		key := dedupeKey(storeID, row["Invoice Number"], row["Invoice Date"], row["Product #"])
		if _, dup := existing[key]; dup {
			duplicates++
			continue
		}
		existing[key] = struct{}{}

		line := analytics.Normalize(row)
		records = append(records, models.InvoiceRecord{
			UserID:             userID,
			UploadID:           upload.ID,
			StoreID:            storeID,
			InvoiceNumber:      row["Invoice Number"],
			InvoiceDate:        row["Invoice Date"],
			CustomerName:       row["Customer Name"],
			Address:            row["Address"],
			City:               row["City"],
			State:              row["State"],
			ZipCode:            row["Zip"],
			ProductCode:        row["Product #"],
			ProductDescription: row["Product Description"],
			Brand:              row["Brand"],
			Category:           line.Category,
			PackSize:           row["Pack Size"],
			Weight:             row["Weight"],
			Quantity:           line.Qty,
			QtyOrdered:         line.QtyOrdered,
			UnitPrice:          line.UnitPrice,
			ExtendedPrice:      line.ExtPrice,
			Vendor:             line.Vendor,
			VendorCode:         row["Vendor Code"],
		})
	}

	if len(records) > 0 {
		if err := copyRecords(records); err != nil {
			log.Printf("[upload.create] ERROR bulk insert err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save records"))
			return
		}
	}

	upload.TotalRecords = len(rows)
	upload.NewRecords = len(records)
	upload.DuplicateRecords = duplicates
	if err := config.Gorm.WithContext(ctx).Model(&upload).Updates(map[string]interface{}{
		"total_records":     upload.TotalRecords,
		"new_records":       upload.NewRecords,
		"duplicate_records": upload.DuplicateRecords,
	}).Error; err != nil {
		log.Printf("[upload.create] ERROR update upload counts err=%v", err)
	}

	// New data invalidates every cached analytics run.
	analytics_cache.Invalidate()

	log.Printf("[upload.create] done upload=%s total=%d new=%d dup=%d unassigned=%d",
		upload.ID, upload.TotalRecords, upload.NewRecords, duplicates, unassigned)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Upload processed", upload))
}

func dedupeKey(storeID, invoiceNumber, invoiceDate, productCode string) string {
	return fmt.Sprintf("%s|%s|%s|%s", storeID, invoiceNumber, invoiceDate, productCode)
}

// loadDedupeKeys pulls the identifying columns of every record the user
// already has, via the pgx pool; uploads are the hot write path.
func loadDedupeKeys(userID uuid.UUID) (map[string]struct{}, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.DB.Query(ctx,
		`SELECT store_id, invoice_number, invoice_date, product_code
		 FROM invoice_records WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var storeID, invoiceNumber, invoiceDate, productCode string
		if err := rows.Scan(&storeID, &invoiceNumber, &invoiceDate, &productCode); err != nil {
			return nil, err
		}
		keys[dedupeKey(storeID, invoiceNumber, invoiceDate, productCode)] = struct{}{}
	}
	return keys, rows.Err()
}

// copyRecords bulk-inserts via pgx COPY; uploads carry thousands of rows.
func copyRecords(records []models.InvoiceRecord) error {
	ctx, cancel := config.WithCustomTimeout(60 * time.Second) // large files
	defer cancel()

	columns := []string{
		"user_id", "upload_id", "store_id",
		"invoice_number", "invoice_date", "customer_name",
		"address", "city", "state", "zip_code",
		"product_code", "product_description", "brand", "category",
		"pack_size", "weight",
		"quantity", "qty_ordered", "unit_price", "extended_price",
		"vendor", "vendor_code",
	}

	_, err := config.DB.CopyFrom(ctx,
		pgx.Identifier{"invoice_records"},
		columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{
				r.UserID, r.UploadID, r.StoreID,
				r.InvoiceNumber, r.InvoiceDate, r.CustomerName,
				r.Address, r.City, r.State, r.ZipCode,
				r.ProductCode, r.ProductDescription, r.Brand, r.Category,
				r.PackSize, r.Weight,
				r.Quantity, r.QtyOrdered, r.UnitPrice, r.ExtendedPrice,
				r.Vendor, r.VendorCode,
			}, nil
		}),
	)
	return err
}
