package model

// User roles
const (
	RoleAdmin       = "admin"
	RoleBuyer       = "buyer"
	RoleCooperative = "cooperative"
)

// User is a demo dashboard identity. Partnerships are meaningful only for
// buyers; CooperativeID only for cooperative-role users.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          string   `json:"role"` // admin, buyer, cooperative
	Partnerships  []string `json:"partnerships"`
	CooperativeID string   `json:"cooperative_id,omitempty"`
}
