package models

// Currency is an entry of the supported-currency catalog.
type Currency struct {
	Code     string `json:"code" db:"code"`           // ISO-like 3-letter code, primary key
	Name     string `json:"name" db:"name"`           // Display name
	IsActive bool   `json:"is_active" db:"is_active"` // Whether conversions may use it
}
