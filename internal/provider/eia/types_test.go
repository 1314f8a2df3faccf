package eia

import (
	"encoding/json"
	"testing"
)

func TestFlexibleFloatUnmarshal(t *testing.T) {
	var f FlexibleFloat
	if err := json.Unmarshal([]byte(`"123.45"`), &f); err != nil || f.Float64() != 123.45 {
		t.Errorf("numeric string: got %v, err %v", f, err)
	}
	if err := json.Unmarshal([]byte(`42`), &f); err != nil || f.Float64() != 42 {
		t.Errorf("number: got %v, err %v", f, err)
	}
	if err := json.Unmarshal([]byte(`"n/a"`), &f); err == nil {
		t.Error("non-numeric string: want error")
	}
}

func TestPeriodUnmarshal(t *testing.T) {
	var p Period
	if err := json.Unmarshal([]byte(`"2021"`), &p); err != nil || p != "2021" {
		t.Errorf("string period: got %q, err %v", p, err)
	}
	if err := json.Unmarshal([]byte(`2021`), &p); err != nil || p != "2021" {
		t.Errorf("numeric period: got %q, err %v", p, err)
	}
}

func TestToObservationAbsentGeneration(t *testing.T) {
	var rec recordRaw
	if err := json.Unmarshal([]byte(`{"period": "2003"}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	o := rec.ToObservation()
	if o.Period != "2003" || o.Value != 0 {
		t.Errorf("got %+v, want {2003 0}", o)
	}
}
