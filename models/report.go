package models

import "time"

// OthersLabel names the residual row of a top-N collapse.
const OthersLabel = "Others"

// RegionRow is one state in the regional rollup.
type RegionRow struct {
	State       string `json:"customer_state"`
	TotalOrders int    `json:"total_orders"`
}

// RFMRow summarises one customer.
type RFMRow struct {
	CustomerUniqueID string  `json:"customer_unique_id"`
	Recency          int     `json:"recency"`
	Frequency        int     `json:"frequency"`
	Monetary         float64 `json:"monetary"`
}

// SegmentRow is one (payment type, value tier) customer group.
type SegmentRow struct {
	PaymentType     string  `json:"payment_type"`
	ValueTier       string  `json:"kelompok_payment_value"`
	TotalOrders     int     `json:"total_orders"`
	UniqueCustomers int     `json:"unique_customers"`
	TopStates       string  `json:"top_state"`
	MeanPayment     float64 `json:"payment_value"`
}

// CustomerLocation is the projected location of a customer.
type CustomerLocation struct {
	ZipCodePrefix string  `json:"customer_zip_code_prefix"`
	City          string  `json:"customer_city"`
	State         string  `json:"customer_state"`
	Lat           float64 `json:"geolocation_lat"`
	Lng           float64 `json:"geolocation_lng"`
}

// TrendPoint is one month of a trend series.
type TrendPoint struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// RFMRanking holds the three ranked slices shown as bar charts.
type RFMRanking struct {
	ByRecency   []RFMRow `json:"by_recency"`
	ByFrequency []RFMRow `json:"by_frequency"`
	ByMonetary  []RFMRow `json:"by_monetary"`
}

// Totals are the headline numbers of the filtered window.
type Totals struct {
	TrendOrders     int     `json:"trend_orders"`
	TrendRevenue    float64 `json:"trend_revenue"`
	PaymentRows     int     `json:"payment_rows"`
	UniqueCustomers int     `json:"unique_customers"`
}

// DashboardView is everything one page render needs.
type DashboardView struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
	Range   DateRange `json:"range"`

	OrdersTrend  []TrendPoint `json:"orders_trend"`
	RevenueTrend []TrendPoint `json:"revenue_trend"`
	Regions      []RegionRow  `json:"regions"`
	RFM          []RFMRow     `json:"rfm"`
	Ranking      RFMRanking   `json:"ranking"`
	Segments     []SegmentRow `json:"segments"`
	Totals       Totals       `json:"totals"`

	CustomerOptions  []string          `json:"customer_options"`
	SelectedCustomer string            `json:"selected_customer"`
	Location         *CustomerLocation `json:"location"`
}
