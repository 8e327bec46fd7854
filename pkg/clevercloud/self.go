package clevercloud

// Myself describes the account that owns the credentials in use.
type Myself struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zipcode"`
	Country        string   `json:"country"`
	Avatar         string   `json:"avatar"`
	CreationDate   uint64   `json:"creationDate"`
	Lang           string   `json:"lang"`
	EmailValidated bool     `json:"emailValidated"`
	OAuthApps      []string `json:"oauthApps"`
	Admin          bool     `json:"admin"`
	CanPay         bool     `json:"canPay"`
	PreferredMFA   string   `json:"preferredMFA"`
	HasPassword    bool     `json:"hasPassword"`
}
