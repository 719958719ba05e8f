package dto

// Login fields are deliberately unvalidated here: an empty submission passes
// through to the auth collaborator, which rejects it.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type OpenModalRequest struct {
	Mode string `json:"mode" binding:"required,oneof=login signup"`
}
