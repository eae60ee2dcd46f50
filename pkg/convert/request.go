package convert

// Request is a single conversion request as sent by the browser page.
type Request struct {
	Kind  Kind   `json:"type"`
	Value string `json:"value"`
}

// Result is a converted value and the derivation that produced it.
type Result struct {
	Value string   `json:"result" yaml:"result"`
	Steps []string `json:"steps" yaml:"steps"`
}

// ErrorResponse is the body returned for a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}
