package services

import (
	"time"

	"ecommerce-dashboard/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		MonthlyOrders: []models.MonthlyOrders{
			{Month: day(2017, 10, 1), TotalOrders: 120},
			{Month: day(2017, 11, 1), TotalOrders: 150},
			{Month: day(2017, 12, 1), TotalOrders: 98},
		},
		MonthlyRevenue: []models.MonthlyRevenue{
			{Month: day(2017, 10, 1), TotalRevenue: 1000},
			{Month: day(2017, 11, 1), TotalRevenue: 2000},
			{Month: day(2017, 12, 1), TotalRevenue: 500},
		},
		Payments: []models.OrderPayment{
			{OrderID: "o1", CustomerUniqueID: "C1", DeliveredAt: at(2017, 10, 3, 9), PaymentType: "credit_card", PaymentValue: 10, CustomerState: "SP", ValueTier: "Sangat tinggi"},
			{OrderID: "o2", CustomerUniqueID: "C1", DeliveredAt: at(2017, 10, 5, 15), PaymentType: "credit_card", PaymentValue: 20, CustomerState: "SP", ValueTier: "Sangat tinggi"},
			{OrderID: "o3", CustomerUniqueID: "C1", DeliveredAt: at(2017, 10, 7, 23), PaymentType: "boleto", PaymentValue: 30, CustomerState: "SP", ValueTier: "Rendah"},
			{OrderID: "o4", CustomerUniqueID: "C2", DeliveredAt: at(2017, 10, 2, 8), PaymentType: "credit_card", PaymentValue: 300, CustomerState: "RJ", ValueTier: "Sangat tinggi"},
			{OrderID: "o5", CustomerUniqueID: "C3", DeliveredAt: at(2017, 11, 20, 12), PaymentType: "voucher", PaymentValue: 5, CustomerState: "MG", ValueTier: "Rendah"},
		},
		Geo: []models.GeoOrder{
			{OrderID: "o1", CustomerUniqueID: "C1", DeliveredAt: at(2017, 10, 3, 9), ZipCodePrefix: "01037", City: "sao paulo", State: "SP", Lat: -23.54, Lng: -46.63},
			{OrderID: "o2", CustomerUniqueID: "C1", DeliveredAt: at(2017, 10, 5, 15), ZipCodePrefix: "01037", City: "sao paulo", State: "SP", Lat: -23.54, Lng: -46.63},
			{OrderID: "o4", CustomerUniqueID: "C2", DeliveredAt: at(2017, 10, 2, 8), ZipCodePrefix: "20040", City: "rio de janeiro", State: "RJ", Lat: -22.9, Lng: -43.17},
			{OrderID: "o5", CustomerUniqueID: "C3", DeliveredAt: at(2017, 11, 20, 12), ZipCodePrefix: "30140", City: "belo horizonte", State: "MG", Lat: -19.92, Lng: -43.94},
		},
	}
}
