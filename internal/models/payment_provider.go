package models

// PaymentProvider represents a third-party payment processor the airline can
// invoice through. Providers are seeded reference data; URL is the base URL
// of the provider's invoice API and always carries a trailing slash.
type PaymentProvider struct {
	ID   string `json:"pp_id" db:"pp_id"`
	URL  string `json:"url" db:"url"`
	Name string `json:"name" db:"name"`
}

// ProviderInfo is the provider list item returned by the /make-booking/ endpoint
type ProviderInfo struct {
	PPCode string `json:"pp_code"`
	PPName string `json:"pp_name"`
}
