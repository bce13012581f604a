package domain

// Account Model
type Account struct {
	Username  string `json:"-"`          // Store-file map key, filled in when listing
	Password  string `json:"password"`   // sha256 hex of the password
	Active    bool   `json:"active"`     // Blocked accounts stay in the file with Active=false
	CreatedAt string `json:"created_at"` // ISO-8601 creation timestamp
}
