package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"agritrace/internal/model"
	"agritrace/internal/store"
)

// Supply-chain checklist. Note the vocabulary only overlaps the timeline
// stages on Harvest and Processing: Drying/Fermentation and Export events
// never tick a checklist box. That is how the dashboard has always behaved.
var supplyChainStages = []string{
	model.StageHarvest,
	model.StageProcessing,
	"Distribution",
	"Retail",
}

// TraceService owns the read-mostly timeline table and the export surface.
type TraceService interface {
	Timeline(fieldID string) []model.TimelineEvent
	SupplyChain(fieldID string) []model.SupplyChainStep
	ExportCSV(user *model.User) string
	ExportJSON(user *model.User) ([]byte, error)
}

type traceService struct {
	store  *store.Store
	events []model.TimelineEvent
}

// NewTraceService returns a TraceService seeded with the demo timeline.
func NewTraceService(st *store.Store) TraceService {
	return &traceService{store: st, events: seedTimeline()}
}

func seedTimeline() []model.TimelineEvent {
	return []model.TimelineEvent{
		{
			FieldID:     "field-kivu-001",
			Date:        "2023-06-10",
			Stage:       model.StageHarvest,
			Description: "Arabica coffee cherries harvested by hand.",
			Location:    "Amani Dufatanye's Farm, South Kivu",
		},
		{
			FieldID:     "field-kivu-001",
			Date:        "2023-06-12",
			Stage:       model.StageDrying,
			Description: "Coffee cherries washed and laid out on drying beds.",
			Location:    "Bukavu Washing Station",
		},
		{
			FieldID:     "field-kivu-001",
			Date:        "2023-07-01",
			Stage:       model.StageProcessing,
			Description: "Dried beans milled and sorted for quality.",
			Location:    "COOPEC-Kivu Plant, Bukavu",
		},
		{
			FieldID:     "field-kivu-001",
			Date:        "2023-07-15",
			Stage:       model.StageExport,
			Description: "Coffee bags shipped from Port of Matadi.",
			Location:    "Port of Matadi",
		},
		{
			FieldID:     "field-equateur-001",
			Date:        "2023-09-25",
			Stage:       model.StageHarvest,
			Description: "Cocoa pods harvested from trees.",
			Location:    "Lokole Bofunda's Farm, Équateur",
		},
		{
			FieldID:     "field-equateur-001",
			Date:        "2023-09-28",
			Stage:       model.StageDrying,
			Description: "Cocoa beans fermented in heaps and sun-dried.",
			Location:    "Mbandaka Fermentation Center",
		},
	}
}

// Timeline returns the field's events most recent first. ISO dates compare
// lexicographically, which matches chronological order. An unknown or empty
// field id yields an empty sequence.
func (s *traceService) Timeline(fieldID string) []model.TimelineEvent {
	if fieldID == "" {
		return []model.TimelineEvent{}
	}
	out := make([]model.TimelineEvent, 0)
	for _, e := range s.events {
		if e.FieldID == fieldID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// SupplyChain derives the checklist for a field: a stage is Completed when
// any timeline event carries that exact stage name, else Pending.
func (s *traceService) SupplyChain(fieldID string) []model.SupplyChainStep {
	if fieldID == "" {
		return []model.SupplyChainStep{}
	}
	completed := make(map[string]bool)
	for _, e := range s.Timeline(fieldID) {
		completed[e.Stage] = true
	}
	chain := make([]model.SupplyChainStep, 0, len(supplyChainStages))
	for _, stage := range supplyChainStages {
		step := model.SupplyChainStep{Stage: stage}
		if completed[stage] {
			step.Status = model.StatusCompleted
			step.Details = stage + " step finished."
		} else {
			step.Status = model.StatusPending
			step.Details = "Awaiting " + stage + "."
		}
		chain = append(chain, step)
	}
	return chain
}

// ExportCSV renders the user's accessible fields as CSV. Values are joined
// raw: no quoting or escaping of embedded commas, matching the dashboard's
// historical download format.
func (s *traceService) ExportCSV(user *model.User) string {
	fields := FilterByRole(s.store.Fields(), s.store.Farmers(), user)
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, strings.Join([]string{
			f.ID,
			f.FarmerID,
			f.FarmerName,
			f.Crop,
			strconv.FormatFloat(f.Area, 'f', -1, 64),
		}, ","))
	}
	return "id,farmer_id,farmer_name,crop,area\n" + strings.Join(rows, "\n")
}

// ExportJSON renders the accessible fields as {"fields": [...]} with each
// polygon as an ordered sequence of {lat, lng} objects, 2-space indented.
func (s *traceService) ExportJSON(user *model.User) ([]byte, error) {
	fields := FilterByRole(s.store.Fields(), s.store.Farmers(), user)
	doc := struct {
		Fields []model.Field `json:"fields"`
	}{Fields: fields}
	return json.MarshalIndent(doc, "", "  ")
}
