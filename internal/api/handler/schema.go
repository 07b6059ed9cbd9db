package handler

import "time"

// successEnvelope wraps every successful auth response body.
type successEnvelope struct {
	Success  bool `json:"success"`
	Response any  `json:"response"`
}

func envelope(response any) successEnvelope {
	return successEnvelope{Success: true, Response: response}
}

// --- Auth ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// credentialsResponse carries the access token. It is the only response type
// in the API that ever exposes the token; the password hash appears nowhere.
type credentialsResponse struct {
	Email       string `json:"email"`
	ID          string `json:"id"`
	AccessToken string `json:"accessToken"`
}

// --- Thoughts ---

type createThoughtRequest struct {
	Message string `json:"message" validate:"required,min=5,max=140"`
}

// thoughtResponse is the transport view of a thought. Kept separate from the
// domain type so the JSON contract is not coupled to internal changes.
type thoughtResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Hearts    int       `json:"hearts"`
	CreatedAt time.Time `json:"createdAt"`
}
