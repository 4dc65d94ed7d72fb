package models

// Response is the JSON envelope returned by every endpoint.
// Result carries the record or list on success. Stack is only
// populated on internal errors.
type Response struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// AuthResponse is returned by login and current-user endpoints.
type AuthResponse struct {
	Error       bool   `json:"error"`
	Message     string `json:"message"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}
