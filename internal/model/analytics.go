package model

// CropSlice is one bucket of the crop-distribution chart.
type CropSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

// YieldPoint is one year of the derived yield series.
type YieldPoint struct {
	Year  int `json:"year"`
	Yield int `json:"yield"`
}
