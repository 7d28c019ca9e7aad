package config

import (
	"log"
	"os"
	"strings"
)

// Keys names the storage key per collection. Exact key strings are
// environment-supplied so the backend can read data persisted by older
// builds of the terminal.
type Keys struct {
	Products         string
	Categories       string
	Sizes            string
	Suppliers        string
	PaymentCards     string
	CompanyProfile   string
	Transactions     string
	TransactionItems string
	Users            string
	Settings         string
	ReceiptTemplate  string
}

type Config struct {
	HTTPPort      string
	BaseURL       string
	CORSOrigins   []string
	JWTSecret     string
	StorageDriver string // sqlite | mysql
	StorageDSN    string
	UploadDir     string
	// Remote upload endpoint; when UploadAPIBase is empty, uploads are
	// stored locally under UploadDir.
	UploadAPIBase     string
	UploadAPIToken    string
	GeminiAPIKey      string
	AllowRegistration bool
	Keys              Keys
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigins:       strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		StorageDriver:     getEnv("STORAGE_DRIVER", "sqlite"),
		StorageDSN:        getEnv("STORAGE_DSN", "./kasirpos.db"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		UploadAPIBase:     getEnv("UPLOAD_API_BASE", ""),
		UploadAPIToken:    getEnv("UPLOAD_API_TOKEN", ""),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		AllowRegistration: os.Getenv("ALLOW_REGISTRATION") == "true",
		Keys: Keys{
			Products:         getEnv("KEY_PRODUCTS", "@pos/products"),
			Categories:       getEnv("KEY_CATEGORIES", "@pos/categories"),
			Sizes:            getEnv("KEY_SIZES", "@pos/sizes"),
			Suppliers:        getEnv("KEY_SUPPLIERS", "@pos/suppliers"),
			PaymentCards:     getEnv("KEY_PAYMENT_CARDS", "@pos/payment_cards"),
			CompanyProfile:   getEnv("KEY_COMPANY_PROFILE", "@pos/company_profile"),
			Transactions:     getEnv("KEY_TRANSACTIONS", "@pos/transactions"),
			TransactionItems: getEnv("KEY_TRANSACTION_ITEMS", "@pos/transaction_items"),
			Users:            getEnv("KEY_USERS", "@pos/users"),
			Settings:         getEnv("KEY_SETTINGS", "@pos/settings"),
			ReceiptTemplate:  getEnv("KEY_RECEIPT_TEMPLATE", "@pos/printer_template"),
		},
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_secret_change_me"
		log.Println("WARNING: JWT_SECRET not set, using an insecure development secret.")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
