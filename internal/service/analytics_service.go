package service

import (
	"sync"

	"agritrace/internal/model"
	"agritrace/internal/store"
	ws "agritrace/internal/websocket"
)

// CropColors maps known crops to their chart colors; anything else falls back
// to neutral gray.
var CropColors = map[string]string{
	"Coffee":         "#6F4E37",
	"Cocoa":          "#D2691E",
	"Arabica Coffee": "#8B4513",
	"Robusta Coffee": "#A0522D",
}

const defaultCropColor = "#9E9E9E"

// AnalyticsService derives the dashboard charts: the crop-distribution
// buckets (cached, recomputed synchronously on every field mutation) and the
// deterministic placeholder yield series.
type AnalyticsService interface {
	CropDistribution() []model.CropSlice
	YieldSeries(fieldID string) []model.YieldPoint
}

type analyticsService struct {
	store *store.Store
	trace TraceService
	hub   *ws.Hub

	mu           sync.RWMutex
	distribution []model.CropSlice
}

// NewAnalyticsService builds the aggregator and subscribes it to field
// mutations, so the distribution is never stale by more than one write.
func NewAnalyticsService(st *store.Store, trace TraceService, hub *ws.Hub) AnalyticsService {
	s := &analyticsService{store: st, trace: trace, hub: hub}
	s.recompute()
	st.Subscribe(func() {
		s.recompute()
		s.hub.BroadcastEvent("crop_distribution", s.CropDistribution())
	})
	return s
}

func (s *analyticsService) recompute() {
	fields := s.store.Fields()
	counts := make(map[string]int, len(fields))
	order := make([]string, 0, len(fields)) // crops in first-seen order, stable output
	for _, f := range fields {
		if _, seen := counts[f.Crop]; !seen {
			order = append(order, f.Crop)
		}
		counts[f.Crop]++
	}

	dist := make([]model.CropSlice, 0, len(order))
	for _, crop := range order {
		fill, ok := CropColors[crop]
		if !ok {
			fill = defaultCropColor
		}
		dist = append(dist, model.CropSlice{Name: crop, Value: counts[crop], Fill: fill})
	}

	s.mu.Lock()
	s.distribution = dist
	s.mu.Unlock()
}

func (s *analyticsService) CropDistribution() []model.CropSlice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CropSlice, len(s.distribution))
	copy(out, s.distribution)
	return out
}

// YieldSeries returns four years of placeholder yield data. Fields without a
// timeline get the fixed baseline; fields with one get baseline values
// perturbed by a stable hash of the field id, so the same field always plots
// the same series.
func (s *analyticsService) YieldSeries(fieldID string) []model.YieldPoint {
	if fieldID == "" || len(s.trace.Timeline(fieldID)) == 0 {
		return []model.YieldPoint{
			{Year: 2020, Yield: 150},
			{Year: 2021, Yield: 175},
			{Year: 2022, Yield: 160},
			{Year: 2023, Yield: 180},
		}
	}
	h := idHash(fieldID) % 100
	return []model.YieldPoint{
		{Year: 2020, Yield: 150 + h%20 - 10},
		{Year: 2021, Yield: 175 + h%15 - 5},
		{Year: 2022, Yield: 160 + h%25 - 15},
		{Year: 2023, Yield: 180 + h%10},
	}
}
