package configs

import (
	"log"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
)

// SeedCatalog loads the demo menu and rooms. FirstOrCreate keeps it
// idempotent when a file DSN is used.
func SeedCatalog() error {
	db := DB()

	products := []entity.Product{
		{ID: "1", Name: "Palov (Osh)", Price: 45000, Category: "Asosiy Taomlar", Image: "https://picsum.photos/seed/osh/400/300", Status: entity.InStock},
		{ID: "2", Name: "Shashlik (Mol go'shti)", Price: 15000, Category: "Asosiy Taomlar", Image: "https://picsum.photos/seed/shashlik/400/300", Status: entity.InStock},
		{ID: "3", Name: "Somsa", Price: 8000, Category: "Asosiy Taomlar", Image: "https://picsum.photos/seed/somsa/400/300", Status: entity.OutOfStock},
		{ID: "4", Name: "Achchiq-chuchuq", Price: 12000, Category: "Salatlar", Image: "https://picsum.photos/seed/salad/400/300", Status: entity.InStock},
		{ID: "5", Name: "Koka-Kola 1.5L", Price: 14000, Category: "Ichimliklar", Image: "https://picsum.photos/seed/cola/400/300", Status: entity.InStock},
		{ID: "6", Name: "Choy (Ko'k/Qora)", Price: 5000, Category: "Ichimliklar", Image: "https://picsum.photos/seed/tea/400/300", Status: entity.InStock},
	}
	for _, p := range products {
		if err := db.FirstOrCreate(&entity.Product{}, p).Error; err != nil {
			return err
		}
	}

	rooms := []entity.Room{
		{ID: "t1", Name: "VIP Xona 1", Capacity: 8, Price: 100000, Image: "https://picsum.photos/seed/vip1/400/300", IsAvailable: true},
		{ID: "t2", Name: "VIP Xona 2", Capacity: 12, Price: 150000, Image: "https://picsum.photos/seed/vip2/400/300", IsAvailable: true},
		{ID: "t3", Name: "Oila xonasi", Capacity: 6, Price: 50000, Image: "https://picsum.photos/seed/family/400/300", IsAvailable: true},
		{ID: "t4", Name: "Ochiq stol #5", Capacity: 4, Price: 0, Image: "https://picsum.photos/seed/table5/400/300", IsAvailable: true},
	}
	for _, r := range rooms {
		if err := db.FirstOrCreate(&entity.Room{}, r).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}

// SeedSales loads the weekly sales series for the manager dashboard.
func SeedSales() error {
	db := DB()

	sales := []entity.SaleRecord{
		{Date: "2024-05-13", Amount: 2500000, Orders: 45},
		{Date: "2024-05-14", Amount: 1800000, Orders: 32},
		{Date: "2024-05-15", Amount: 3200000, Orders: 58},
		{Date: "2024-05-16", Amount: 2100000, Orders: 38},
		{Date: "2024-05-17", Amount: 4500000, Orders: 82},
		{Date: "2024-05-18", Amount: 5200000, Orders: 95},
		{Date: "2024-05-19", Amount: 4800000, Orders: 88},
	}
	for _, s := range sales {
		if err := db.FirstOrCreate(&entity.SaleRecord{}, entity.SaleRecord{Date: s.Date, Amount: s.Amount, Orders: s.Orders}).Error; err != nil {
			return err
		}
	}
	return nil
}

func SeedDevices() error {
	db := DB()

	devices := []entity.Device{
		{ID: "dev1", Name: "iPhone 15 Pro (Boshliq)", Location: "Toshkent", LastActive: "Hozir faol", Type: "mobile", IP: "192.168.1.15"},
		{ID: "dev2", Name: "MacBook Air (Admin)", Location: "Samarqand", LastActive: "2 daqiqa oldin", Type: "desktop", IP: "192.168.1.2"},
	}
	for _, d := range devices {
		if err := db.FirstOrCreate(&entity.Device{}, d).Error; err != nil {
			return err
		}
	}
	return nil
}
