package model

// Identity is the authenticated-identity record pushed by the auth
// collaborator's stream. IDToken is the bearer token issued at sign-in and is
// never exposed in page state.
type Identity struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IDToken string `json:"-"`
}
