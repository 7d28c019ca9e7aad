package models

import (
	"time"
)

// Identity carries the store-assigned integer id. Every persisted record
// embeds it so the generic collection store can read and assign ids.
type Identity struct {
	ID int `json:"id"`
}

func (r *Identity) GetID() int   { return r.ID }
func (r *Identity) SetID(id int) { r.ID = id }

// Transaction status values.
const (
	StatusDraft     = "draft"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)

// Supported date format settings.
const (
	DateFormatDMY = "DD/MM/YYYY"
	DateFormatMDY = "MM/DD/YYYY"
	DateFormatYMD = "YYYY-MM-DD"
)

// User - the person operating the terminal. Role is 'admin' or 'employee'.
type User struct {
	Identity
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Product - the inventory. Modal is the cost price; stock must never go
// negative and category/size/supplier ids are soft references (nothing
// enforces them at the storage layer).
type Product struct {
	Identity
	UID            string    `json:"uid"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Modal          float64   `json:"modal"`
	Stock          int       `json:"stock"`
	Sold           int       `json:"sold"`
	Unit           string    `json:"unit"`
	Barcode        string    `json:"barcode"`
	IsActive       bool      `json:"is_active"`
	MinStock       int       `json:"min_stock"`
	Discount       float64   `json:"discount"`
	Description    string    `json:"description,omitempty"`
	CategoryID     int       `json:"category_id,omitempty"`
	SizeID         int       `json:"size_id,omitempty"`
	SupplierID     int       `json:"supplier_id,omitempty"`
	ExpirationDate string    `json:"expiration_date,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProductCategory struct {
	Identity
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductSize struct {
	Identity
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Supplier struct {
	Identity
	UID           string    `json:"uid"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Transaction - the sale header. TransactionNumber is the unique business
// key; total = subtotal - discount + tax.
type Transaction struct {
	Identity
	TransactionNumber string    `json:"transaction_number"`
	CustomerName      string    `json:"customer_name,omitempty"`
	CustomerPhone     string    `json:"customer_phone,omitempty"`
	Subtotal          float64   `json:"subtotal"`
	Discount          float64   `json:"discount"`
	Tax               float64   `json:"tax"`
	Total             float64   `json:"total"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentStatus     string    `json:"payment_status"`
	Status            string    `json:"status"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TransactionItem - one cart line. Price is a snapshot of the product price
// at sale time; subtotal = quantity*price - discount.
type TransactionItem struct {
	Identity
	TransactionID int     `json:"transaction_id"`
	ProductID     int     `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Discount      float64 `json:"discount"`
	Subtotal      float64 `json:"subtotal"`
}

type PaymentCard struct {
	Identity
	UID           string    `json:"uid"`
	PaymentMethod string    `json:"payment_method"`
	Bank          string    `json:"bank,omitempty"`
	AccountNumber string    `json:"account_number"`
	HolderName    string    `json:"holder_name"`
	IsActive      bool      `json:"is_active"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompanyProfile - singleton record, id fixed to 1 once saved.
type CompanyProfile struct {
	Identity
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings - process-wide preferences, persisted as a single object
// (not identity-bearing).
type AppSettings struct {
	DateFormat    string `json:"dateFormat"`
	DecimalPlaces int    `json:"decimalPlaces"`
}
