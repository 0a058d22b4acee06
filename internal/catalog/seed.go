package catalog

import (
	"time"

	"sialkot-shop/internal/domain"

	"github.com/google/uuid"
)

// Categories returns the storefront categories in display order
func Categories() []domain.Category {
	return []domain.Category{
		{Name: "Sports Goods", ImageURL: "https://picsum.photos/seed/sports/600/400"},
		{Name: "Leather Products", ImageURL: "https://picsum.photos/seed/leather/600/400"},
		{Name: "Surgical Instruments", ImageURL: "https://picsum.photos/seed/surgical/600/400"},
		{Name: "Apparel", ImageURL: "https://picsum.photos/seed/apparel/600/400"},
	}
}

// NewProduct builds the editable placeholder product created from an
// uploaded image.
func NewProduct(imageURL string, now time.Time) *domain.Product {
	return &domain.Product{
		ID:          "prod-" + uuid.NewString(),
		Name:        "New Product Title",
		Category:    "Apparel",
		Description: "Enter a description for your new product.",
		ImageURL:    imageURL,
		Price:       "$0.00",
		Reviews:     []domain.Review{},
		Customization: &domain.CustomizationOptions{
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"#FFFFFF", "#000000", "#FF0000", "#0000FF"},
			AllowQuantity: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func apparel(sizes []string, colors ...string) *domain.CustomizationOptions {
	return &domain.CustomizationOptions{Sizes: sizes, Colors: colors, AllowQuantity: true}
}

// SampleProducts returns a fresh copy of the sample catalog in display order.
// Reviews are most recent first.
func SampleProducts() []*domain.Product {
	products := []*domain.Product{
		{
			ID:          "prod-1",
			Name:        "Professional Soccer Ball",
			Category:    "Sports Goods",
			Description: "FIFA quality standard, hand-stitched for superior durability and performance.",
			ImageURL:    "https://picsum.photos/seed/soccer/500/350",
			Price:       "$45.00",
			Reviews: []domain.Review{
				{ID: "rev-1-1", Author: "Alex Johnson", Rating: 5, Comment: "Incredible quality. The best ball I have ever used. Worth every penny!", CreatedAt: day("2023-10-22")},
				{ID: "rev-1-2", Author: "Maria Garcia", Rating: 4, Comment: "Great feel and durability, though it took a day to break in properly.", CreatedAt: day("2023-10-20")},
			},
		},
		{
			ID:          "prod-2",
			Name:        "Classic Leather Jacket",
			Category:    "Leather Products",
			Description: "Made from 100% genuine Sialkot leather, offering timeless style and comfort.",
			ImageURL:    "https://picsum.photos/seed/jacket/500/350",
			Price:       "$149.99",
			Reviews: []domain.Review{
				{ID: "rev-2-1", Author: "David Smith", Rating: 5, Comment: "The craftsmanship is outstanding. Fits perfectly and looks amazing.", CreatedAt: day("2023-11-05")},
			},
		},
		{
			ID:          "prod-3",
			Name:        "Precision Scalpel Set",
			Category:    "Surgical Instruments",
			Description: "High-grade stainless steel for surgical precision. Autoclavable and rust-free.",
			ImageURL:    "https://picsum.photos/seed/scalpel/500/350",
			Price:       "$79.50",
			Reviews:     []domain.Review{},
		},
		{
			ID:          "prod-4",
			Name:        `"Retro Tour '89" Oversized Graphic Tee`,
			Category:    "Apparel",
			Description: "Feel the nostalgia with this perfectly faded, oversized graphic tee. Made from heavyweight cotton for a premium feel and a relaxed, lived-in look. A true concert classic reborn.",
			ImageURL:    "https://picsum.photos/seed/band-tee/500/350",
			Price:       "$45.00",
			Reviews: []domain.Review{
				{ID: "rev-4-1", Author: "Jenna Ortega", Rating: 5, Comment: "Literally live in this shirt. It has the perfect vintage vibe and is so comfy.", CreatedAt: day("2023-11-18")},
				{ID: "rev-4-2", Author: "Mark R.", Rating: 5, Comment: "Great quality print and fabric. Feels like a real vintage find.", CreatedAt: day("2023-11-16")},
			},
			// washed black, cream
			Customization: apparel([]string{"S", "M", "L", "XL"}, "#262626", "#F5F5F4"),
		},
		{
			ID:          "prod-5",
			Name:        `"Malibu" Casual T-Shirt Dress`,
			Category:    "Apparel",
			Description: "Effortless style meets ultimate comfort. This soft-brushed t-shirt dress is your new go-to for beach days, brunch, or a casual night out. Dress it up or down with sneakers or sandals.",
			ImageURL:    "https://picsum.photos/seed/tshirt-dress/500/350",
			Price:       "$55.00",
			Reviews: []domain.Review{
				{ID: "rev-5-1", Author: "Hailey B.", Rating: 5, Comment: "So versatile and chic. The fabric is incredibly soft. I bought it in two colors!", CreatedAt: day("2023-11-20")},
			},
			Customization: apparel([]string{"XS", "S", "M", "L", "XL"}, "#000000", "#6B7280", "#8FBC8F"),
		},
		{
			ID:          "prod-6",
			Name:        `"Venice" Cropped Baby Tee`,
			Category:    "Apparel",
			Description: "The perfect crop. This fitted baby tee is made from a soft, ribbed cotton blend with just the right amount of stretch. A Y2K staple for your modern wardrobe.",
			ImageURL:    "https://picsum.photos/seed/baby-tee/500/350",
			Price:       "$28.00",
			Reviews: []domain.Review{
				{ID: "rev-6-1", Author: "Olivia R.", Rating: 5, Comment: "Obsessed! It fits so well and is super flattering. Great with high-waisted jeans.", CreatedAt: day("2023-11-19")},
			},
			Customization: apparel([]string{"XXS", "XS", "S", "M"}, "#FFFFFF", "#F8C8DC", "#ADD8E6"),
		},
		{
			ID:          "prod-7",
			Name:        `"Beverly Hills" Embroidered Linen Tee`,
			Category:    "Apparel",
			Description: "Elevate your basics with this lightweight linen-blend tee. Features delicate floral embroidery for a touch of sophistication. Breathable, soft, and effortlessly chic.",
			ImageURL:    "https://picsum.photos/seed/linen-tee/500/350",
			Price:       "$48.50",
			Reviews: []domain.Review{
				{ID: "rev-7-1", Author: "Sofia Richie", Rating: 5, Comment: "The embroidery detail is beautiful. Looks so much more expensive than it is. Perfect for a quiet luxury look.", CreatedAt: day("2023-11-21")},
			},
			Customization: apparel([]string{"XS", "S", "M", "L"}, "#F5F5DC", "#E6E6FA"),
		},
		{
			ID:          "prod-8",
			Name:        `"Runyon Canyon" Performance Tee`,
			Category:    "Apparel",
			Description: "Engineered for your active lifestyle. This moisture-wicking performance tee is buttery-soft, breathable, and features a flattering athletic cut. From hiking trails to coffee runs.",
			ImageURL:    "https://picsum.photos/seed/athletic-tee/500/350",
			Price:       "$39.99",
			Reviews: []domain.Review{
				{ID: "rev-8-1", Author: "Chris H.", Rating: 5, Comment: "Favorite workout shirt. Dries super fast and doesn't cling. Highly recommend.", CreatedAt: day("2023-11-15")},
			},
			Customization: apparel([]string{"S", "M", "L", "XL", "XXL"}, "#36454F", "#008080", "#800000"),
		},
		{
			ID:          "prod-9",
			Name:        `"The Bel-Air" Modern Fit Polo`,
			Category:    "Apparel",
			Description: "A timeless classic, redefined. Our polo is crafted from premium piqué cotton with a modern, tailored fit. The perfect blend of casual comfort and polished style for any occasion.",
			ImageURL:    "https://picsum.photos/seed/polo-shirt/500/350",
			Price:       "$65.00",
			Reviews: []domain.Review{
				{ID: "rev-9-1", Author: "Jacob Elordi", Rating: 5, Comment: "Excellent fit and quality material. The collar sits perfectly. A true staple.", CreatedAt: day("2023-11-17")},
			},
			Customization: apparel([]string{"S", "M", "L", "XL"}, "#000080", "#FFFFFF", "#F0E68C"),
		},
	}

	created := day("2023-10-01")
	for _, p := range products {
		p.CreatedAt = created
		p.UpdatedAt = created
	}
	return products
}
