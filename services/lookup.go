package services

import (
	"github.com/samber/lo"

	"ecommerce-dashboard/models"
)

// LocateCustomer returns the first distinct location recorded for the
// customer in rows.
func LocateCustomer(rows []models.GeoOrder, customerID string) (*models.CustomerLocation, bool) {
	if customerID == "" {
		return nil, false
	}

	locs := lo.FilterMap(rows, func(g models.GeoOrder, _ int) (models.CustomerLocation, bool) {
		return models.CustomerLocation{
			ZipCodePrefix: g.ZipCodePrefix,
			City:          g.City,
			State:         g.State,
			Lat:           g.Lat,
			Lng:           g.Lng,
		}, g.CustomerUniqueID == customerID
	})
	locs = lo.Uniq(locs)
	if len(locs) == 0 {
		return nil, false
	}
	return &locs[0], true
}
