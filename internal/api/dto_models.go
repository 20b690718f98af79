package api

// APIError is the error half of the response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the uniform envelope returned by every endpoint:
// {success, data, error}. Exactly one of Data and Error is non-null.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *APIError   `json:"error"`
}

// MessageData is a generic data payload carrying a single message,
// e.g. the password-reset acknowledgement.
type MessageData struct {
	Message string `json:"message"`
}

// BulkImportData is the data payload of a successful bulk import.
type BulkImportData struct {
	Count int `json:"count"`
}
