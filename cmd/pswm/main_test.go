package main

import "testing"

func TestFieldFlagsParsesKeyValue(t *testing.T) {
	f := make(fieldFlags)
	if err := f.Set("Phone Number=0502057422"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if f["Phone Number"] != "0502057422" {
		t.Errorf("f = %v, want Phone Number=0502057422", f)
	}
}

func TestFieldFlagsRejectsMissingEquals(t *testing.T) {
	f := make(fieldFlags)
	if err := f.Set("no-equals-sign"); err == nil {
		t.Error("Set() on a value with no '=' should fail")
	}
}

func TestFieldFlagsAccumulatesAcrossRepeats(t *testing.T) {
	f := make(fieldFlags)
	if err := f.Set("a=1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set("b=2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if len(f) != 2 || f["a"] != "1" || f["b"] != "2" {
		t.Errorf("f = %v, want {a:1 b:2}", f)
	}
}
