package models

// CompanyInfo is the company profile captured by the setup flow and
// persisted in the settings store.
type CompanyInfo struct {
	CompanyName string `json:"company_name" bson:"company_name" binding:"required"`
	Address     string `json:"address" bson:"address"`
	City        string `json:"city" bson:"city"`
	Country     string `json:"country" bson:"country"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	VATNumber   string `json:"vat_number" bson:"vat_number"`
	Currency    string `json:"currency" bson:"currency"`
}

// Preferences are the per-installation display and notification options.
type Preferences struct {
	Theme         string `json:"theme" bson:"theme"`
	Language      string `json:"language" bson:"language"`
	Notifications bool   `json:"notifications" bson:"notifications"`
}
