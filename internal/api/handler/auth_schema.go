package handler

// signupRequest is the validated signup payload. The password rule mirrors
// the minimum the frontend enforces; the username is trimmed and escaped
// before the rules run.
type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"pwd"      validate:"required,min=6"`
}

func (r *signupRequest) sanitize() {
	r.Username = cleanString(r.Username)
	// The password is hashed verbatim, never rendered; escaping would change
	// the credential.
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"pwd"`
}

// tokenResponse carries the signed bearer token issued on signup and login.
type tokenResponse struct {
	Token string `json:"token"`
}
