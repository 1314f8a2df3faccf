package model

// SeriesRequest maps a friendly series name to its EIA series ID.
// Requests are carried as an ordered slice; request order decides
// fetch order and, downstream, table column order.
type SeriesRequest struct {
	Name string
	ID   string
}

// Observation is one (period, value) data point after projection.
// Period is the year label as returned by the API; Value is generation
// in thousand megawatthours.
type Observation struct {
	Period string
	Value  float64
}

// SeriesData holds raw observations per series in fetch order.
// Names preserves the order series were fetched; Records maps name to
// its ordered observations.
type SeriesData struct {
	Names   []string
	Records map[string][]Observation
}

// NewSeriesData creates an empty SeriesData.
func NewSeriesData() *SeriesData {
	return &SeriesData{Records: make(map[string][]Observation)}
}

// Add registers observations under name, keeping first-seen order.
// Adding the same name twice replaces its records without duplicating
// the name entry.
func (s *SeriesData) Add(name string, obs []Observation) {
	if _, ok := s.Records[name]; !ok {
		s.Names = append(s.Names, name)
	}
	s.Records[name] = obs
}

// Len returns the number of registered series.
func (s *SeriesData) Len() int {
	return len(s.Names)
}
