package models

import "time"

// OrderPayment is one row of the customers/orders/payments extract.
// An order with several payments appears once per payment.
type OrderPayment struct {
	OrderID          string
	CustomerUniqueID string
	DeliveredAt      time.Time
	PaymentType      string
	PaymentValue     float64
	CustomerState    string
	ValueTier        string
}

// GeoOrder is one row of the orders/customers/geolocation extract.
type GeoOrder struct {
	OrderID          string
	CustomerUniqueID string
	DeliveredAt      time.Time
	ZipCodePrefix    string
	City             string
	State            string
	Lat              float64
	Lng              float64
}

// MonthlyOrders is a pre-aggregated order count for one calendar month.
type MonthlyOrders struct {
	Month       time.Time
	TotalOrders int
}

// MonthlyRevenue is a pre-aggregated revenue total for one calendar month.
type MonthlyRevenue struct {
	Month        time.Time
	TotalRevenue float64
}

// Dataset holds the four extracts. It is built once and never mutated;
// filtering always produces new slices.
type Dataset struct {
	MonthlyOrders  []MonthlyOrders
	MonthlyRevenue []MonthlyRevenue
	Payments       []OrderPayment
	Geo            []GeoOrder
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(r.Start)) && !d.After(Day(r.End))
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
