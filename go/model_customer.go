package storefrontserver

import "time"

// Credentials is the payload for both sign-up and sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Customer is the account representation returned to clients. The
// password hash never leaves the server.
type Customer struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
