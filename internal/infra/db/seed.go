package db

import (
	"context"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

// SeedProducts はカタログが空のときだけ初期商品を投入する。
func SeedProducts(ctx context.Context, products repo.ProductRepository) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return products.CreateBulk(ctx, catalog())
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func catalog() []model.Product {
	return []model.Product{
		{Title: "Apple iPhone 13", Photo: "iphone13.png", VendorInfo: "Apple", Price: price("999.99"),
			Description: "A15 Bionic chip, Super Retina XDR display, dual-camera system with Night and Cinematic modes, 5G."},
		{Title: "Samsung Galaxy S21", Photo: "galaxy_s21.png", VendorInfo: "Samsung", Price: price("799.99"),
			Description: "Dynamic AMOLED display, Exynos processor, triple-camera system with 8K video recording."},
		{Title: "Google Pixel 6", Photo: "pixel_6.png", VendorInfo: "Google", Price: price("599.99"),
			Description: "Tensor chip, stock Android with timely updates, Magic Eraser and real-time translation."},
		{Title: "OnePlus 9", Photo: "oneplus_9.png", VendorInfo: "OnePlus", Price: price("729.99"),
			Description: "120Hz fluid AMOLED display, Hasselblad camera tuning, Warp Charge fast charging."},
		{Title: "Xiaomi Mi 11", Photo: "mi_11.png", VendorInfo: "Xiaomi", Price: price("749.99"),
			Description: "AMOLED display with HDR10+, Snapdragon processor, triple-camera setup, 5G support."},
		{Title: "Sony Xperia 5 III", Photo: "xperia_5_iii.png", VendorInfo: "Sony", Price: price("999.99"),
			Description: "Cinematic OLED display, triple-lens camera with telephoto zoom, advanced audio."},
		{Title: "Nokia G50", Photo: "nokia_g50.png", VendorInfo: "Nokia", Price: price("299.99"),
			Description: "Large display, robust battery life, 5G connectivity at an affordable price."},
		{Title: "Motorola Moto G Power", Photo: "moto_g_power.png", VendorInfo: "Motorola", Price: price("249.99"),
			Description: "Up to three days of battery on a single charge with a capable camera system."},
		{Title: "Huawei P40 Pro", Photo: "huawei_p40_pro.png", VendorInfo: "Huawei", Price: price("899.99"),
			Description: "AI quad-camera setup, immersive OLED display, fast charging and long battery life."},
		{Title: "Oppo Find X3 Pro", Photo: "oppo_find_x3_pro.png", VendorInfo: "Oppo", Price: price("1149.99"),
			Description: "AMOLED display with deep contrasts, innovative camera sensor, fast charging."},
	}
}
