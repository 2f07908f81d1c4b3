package dto

// CredentialsRequest is the body of the register and login endpoints
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
