package model

// Cooperative groups farmers under one organization.
// Never auto-deleted; farmers may keep dangling references to a removed cooperative.
type Cooperative struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Farmer is an individual grower belonging to at most one cooperative.
type Farmer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CooperativeID string `json:"cooperative_id"`
}
