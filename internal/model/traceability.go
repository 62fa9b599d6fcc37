package model

// Timeline event stages as recorded in the field history.
const (
	StageHarvest    = "Harvest"
	StageDrying     = "Drying/Fermentation"
	StageProcessing = "Processing"
	StageExport     = "Export"
)

// Supply-chain checklist statuses
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)

// TimelineEvent is a dated supply-chain milestone for a field. Events are
// read-mostly seed data; no operation creates or edits them.
type TimelineEvent struct {
	FieldID     string `json:"field_id"`
	Date        string `json:"date"` // ISO date, lexicographic order == chronological
	Stage       string `json:"stage"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// SupplyChainStep is a derived checklist entry; it is never stored.
type SupplyChainStep struct {
	Stage   string `json:"stage"`
	Status  string `json:"status"` // Completed, Pending
	Details string `json:"details"`
}
