package response

import "miprojet_payments/internal/domain/entities"

// ProvisionUserResponse is the service-level user creation result. The
// duplicate-email case is reported as success=false with HTTP 200, which
// the back-office client relies on.

type ProvisionUserResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	Error   string `json:"error,omitempty"`
}

func FromProvisionedUser(u entities.User) ProvisionUserResponse {
	return ProvisionUserResponse{Success: true, UserID: u.ID}
}
