package eia

import (
	"encoding/json"
	"fmt"
	"strconv"

	"eia-trends/internal/model"
)

// seriesResponse is the EIA v2 response envelope. The data list lives
// under response.data; everything else in the envelope is ignored.
type seriesResponse struct {
	Response *responseBody `json:"response"`
}

type responseBody struct {
	Total FlexibleFloat `json:"total,omitempty"`
	Data  []recordRaw   `json:"data"`
}

// recordRaw is one raw observation as returned by the API. Generation
// arrives as a JSON number or a numeric string depending on the
// series, and may be null; Period is sometimes a bare number.
type recordRaw struct {
	Period     Period         `json:"period"`
	Generation *FlexibleFloat `json:"generation"`
	Units      string         `json:"units,omitempty"`
}

// ToObservation converts a raw record to a model.Observation.
// A null or absent generation becomes 0 under the same negligible-
// generation policy the aligner applies to missing periods.
func (r recordRaw) ToObservation() model.Observation {
	var v float64
	if r.Generation != nil {
		v = r.Generation.Float64()
	}
	return model.Observation{Period: string(r.Period), Value: v}
}

// Period parses a year label from either a JSON string or number.
type Period string

func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Period(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Period(strconv.FormatInt(n, 10))
		return nil
	}
	return fmt.Errorf("cannot parse period: %s", string(data))
}

// FlexibleFloat parses a number or numeric string to float64.
type FlexibleFloat float64

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexibleFloat(val)
		return nil
	}

	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*f = FlexibleFloat(floatVal)
		return nil
	}

	return fmt.Errorf("cannot parse as float64: %s", string(data))
}

// Float64 returns the float64 value.
func (f FlexibleFloat) Float64() float64 {
	return float64(f)
}
