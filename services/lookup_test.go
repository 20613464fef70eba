package services

import "testing"

func TestLocateCustomer(t *testing.T) {
	geo := sampleDataset().Geo

	loc, ok := LocateCustomer(geo, "C1")
	if !ok {
		t.Fatal("expected a location for C1")
	}
	if loc.City != "sao paulo" || loc.State != "SP" || loc.ZipCodePrefix != "01037" {
		t.Errorf("C1 location: got %+v", loc)
	}

	if _, ok := LocateCustomer(geo, "nobody"); ok {
		t.Error("expected no location for unknown customer")
	}
	if _, ok := LocateCustomer(geo, ""); ok {
		t.Error("expected no location for empty id")
	}
}

func TestLocateCustomerFirstDistinct(t *testing.T) {
	geo := sampleDataset().Geo
	geo[1].City = "guarulhos"

	loc, _ := LocateCustomer(geo, "C1")
	if loc.City != "sao paulo" {
		t.Errorf("expected the first recorded location, got %q", loc.City)
	}
}
