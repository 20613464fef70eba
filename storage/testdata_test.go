package storage

import (
	"os"
	"path/filepath"
	"testing"
)

var fixtureCSV = map[string]string{
	MonthlyOrdersExtract: `order_delivered_customer_date,total_orders
October - 2017,120
November - 2017,150
December - 2017,98
`,
	MonthlyRevenueExtract: `order_delivered_customer_date,total_revenue
October - 2017,15230.5
November - 2017,18000
December - 2017,11999.99
`,
	PaymentsExtract: `order_id,customer_unique_id,order_delivered_customer_date,payment_type,payment_value,customer_state,kelompok_payment_value,extra
o1,c1,2017-10-02 10:00:00,credit_card,10.5,sp,Sangat tinggi,x
o2,c1,2017-10-05 08:30:00,boleto,20,SP,Rendah,x
o3,c2,,voucher,5,RJ,Rendah,x
o4,c2,2017-11-01,credit_card,99.9,RJ,Sangat tinggi,x
`,
	GeoExtract: `order_id,customer_unique_id,order_delivered_customer_date,customer_zip_code_prefix,customer_city,customer_state,geolocation_lat,geolocation_lng
o1,c1,2017-10-02 10:00:00,1037,sao paulo,SP,-23.54,-46.63
o4,c2,2017-11-01 09:00:00,20040,rio de janeiro,RJ,-22.9,-43.17
`,
}

// writeFixtures writes the fixture extracts into a fresh directory,
// applying any overrides.
func writeFixtures(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixtureCSV {
		if o, ok := overrides[name]; ok {
			body = o
		}
		if body == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name+".csv"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
