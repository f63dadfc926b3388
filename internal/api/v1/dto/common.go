package dto

// MessageDTO is the generic {success, message} envelope used for errors and
// bare acknowledgements.
type MessageDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthDTO struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}
