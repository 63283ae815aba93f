package clerk

// Config holds Clerk backend API client configuration.
type Config struct {
	APIURL    string
	SecretKey string
	CacheSize int // max cached profiles, <=0 uses DefaultCacheSize
}

// Profile is the resolved guest contact metadata for an owner.
type Profile struct {
	UserID       string
	FullName     string
	PrimaryEmail string
}

// Session is a verified session token.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// userResponse is the raw /v1/users/{id} payload.
type userResponse struct {
	ID                    string `json:"id"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	PrimaryEmailAddressID string `json:"primary_email_address_id"`
	EmailAddresses        []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}
