package services

import (
	"fmt"
	"testing"

	"ecommerce-dashboard/models"
)

func geoRows(counts map[string]int) []models.GeoOrder {
	var rows []models.GeoOrder
	n := 0
	for state, c := range counts {
		for i := 0; i < c; i++ {
			n++
			rows = append(rows, models.GeoOrder{OrderID: fmt.Sprintf("o%d", n), State: state})
		}
	}
	return rows
}

func TestCollapseTopNExample(t *testing.T) {
	rollup := []models.RegionRow{
		{State: "SP", TotalOrders: 50},
		{State: "RJ", TotalOrders: 40},
		{State: "MG", TotalOrders: 30},
		{State: "RS", TotalOrders: 20},
		{State: "PR", TotalOrders: 10},
		{State: "SC", TotalOrders: 5},
		{State: "BA", TotalOrders: 3},
	}

	got := CollapseTopN(rollup, 5)
	if len(got) != 6 {
		t.Fatalf("rows: got %d, want 6", len(got))
	}
	for i := 0; i < 5; i++ {
		if got[i] != rollup[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], rollup[i])
		}
	}
	if got[5].State != models.OthersLabel || got[5].TotalOrders != 8 {
		t.Errorf("Others: got %+v, want {Others 8}", got[5])
	}
}

func TestCollapseTopNOthersStaysLast(t *testing.T) {
	rollup := []models.RegionRow{
		{State: "SP", TotalOrders: 5},
		{State: "RJ", TotalOrders: 4},
		{State: "MG", TotalOrders: 3},
		{State: "RS", TotalOrders: 3},
	}
	got := CollapseTopN(rollup, 1)
	if got[len(got)-1].State != models.OthersLabel || got[1].TotalOrders != 10 {
		t.Errorf("got %+v", got)
	}
}

func TestCollapseTopNFewStates(t *testing.T) {
	got := CollapseTopN([]models.RegionRow{{State: "SP", TotalOrders: 2}}, 5)
	if len(got) != 2 || got[1].TotalOrders != 0 {
		t.Errorf("got %+v, want SP + empty Others", got)
	}
	if CollapseTopN(nil, 5) != nil {
		t.Error("expected nil for empty rollup")
	}
}

func TestRegionalRollupOrdering(t *testing.T) {
	got := RegionalRollup(geoRows(map[string]int{"SP": 3, "RJ": 1, "BA": 1, "MG": 2}))
	want := []models.RegionRow{
		{State: "SP", TotalOrders: 3},
		{State: "MG", TotalOrders: 2},
		{State: "BA", TotalOrders: 1},
		{State: "RJ", TotalOrders: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestShare(t *testing.T) {
	got := Share([]models.RegionRow{{TotalOrders: 1}, {TotalOrders: 3}})
	if got[0] != 25 || got[1] != 75 {
		t.Errorf("Share: got %v, want [25 75]", got)
	}
	if s := Share([]models.RegionRow{{TotalOrders: 0}}); s[0] != 0 {
		t.Errorf("Share of zero total: got %v", s)
	}
}
