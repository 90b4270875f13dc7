package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Store is one Sanpeggio's location. AddressPatterns is a JSON array of
// uppercase substrings matched against invoice ship-to addresses to route
// uploaded rows to the right store.
type Store struct {
	ID              string         `json:"id" gorm:"primaryKey"` // slug: trussville, chelsea, ...
	Name            string         `json:"name" gorm:"not null"`
	Location        string         `json:"location"`
	AddressPatterns datatypes.JSON `json:"address_patterns" gorm:"type:jsonb"` // ["7270 GADSDEN HWY", ...]
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Store) TableName() string {
	return "stores"
}

// Upload is one invoice file ingestion.
type Upload struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	StoreID          string    `json:"store_id" gorm:"not null;index"`
	Filename         string    `json:"filename" gorm:"not null"`
	FileSize         int64     `json:"file_size"`
	TotalRecords     int       `json:"total_records" gorm:"default:0"`
	NewRecords       int       `json:"new_records" gorm:"default:0"`
	DuplicateRecords int       `json:"duplicate_records" gorm:"default:0"`
	UploadDate       time.Time `json:"upload_date" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (u *Upload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Upload) TableName() string {
	return "uploads"
}

// InvoiceRecord is a persisted raw invoice row. Rows are deduplicated per
// user and store on (invoice number, invoice date, product code); the
// invoice date is stored as the source string, parsing happens in the
// analytics normalizer.
type InvoiceRecord struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_records_user_store"`
	UploadID uuid.UUID `json:"upload_id" gorm:"type:uuid;index"`
	StoreID  string    `json:"store_id" gorm:"not null;index:idx_records_user_store"`

	InvoiceNumber string `json:"invoice_number" gorm:"index"`
	InvoiceDate   string `json:"invoice_date"`
	CustomerName  string `json:"customer_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`

	ProductCode        string `json:"product_code"`
	ProductDescription string `json:"product_description" gorm:"type:text"`
	Brand              string `json:"brand"`
	Category           string `json:"category" gorm:"index"`
	PackSize           string `json:"pack_size"`
	Weight             string `json:"weight"`

	Quantity      float64 `json:"quantity"`
	QtyOrdered    float64 `json:"qty_ordered"`
	UnitPrice     float64 `json:"unit_price"`
	ExtendedPrice float64 `json:"extended_price"`

	Vendor     string `json:"vendor" gorm:"index"`
	VendorCode string `json:"vendor_code"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (InvoiceRecord) TableName() string {
	return "invoice_records"
}

// ToRawRow converts a persisted record back to the column-keyed shape the
// analytics normalizer consumes.
func (r *InvoiceRecord) ToRawRow() RawInvoiceRow {
	return RawInvoiceRow{
		"Invoice Number":            r.InvoiceNumber,
		"Invoice Date":              r.InvoiceDate,
		"Customer Name":             r.CustomerName,
		"Address":                   r.Address,
		"City":                      r.City,
		"State":                     r.State,
		"Zip":                       r.ZipCode,
		"Product #":                 r.ProductCode,
		"Product Description":       r.ProductDescription,
		"Brand":                     r.Brand,
		"Product Class Description": r.Category,
		"Pack Size":                 r.PackSize,
		"Weight":                    r.Weight,
		"Qty Shipped":               floatString(r.Quantity),
		"Qty Ordered":               floatString(r.QtyOrdered),
		"Unit Price":                floatString(r.UnitPrice),
		"Ext. Price":                floatString(r.ExtendedPrice),
		"Manufacturer Name":         r.Vendor,
		"Vendor Code":               r.VendorCode,
	}
}

func floatString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
