package repository

import (
	"time"

	"club-merch/internal/domain"
)

// Demo dataset: one club, the full Clique merchandise range, a season of
// mock orders and two dashboard logins. This is the entire data universe of
// the platform; nothing is loaded from outside the process.

// SeedCategories returns the storefront category tabs, including the
// synthetic "all" tab.
func SeedCategories() []*domain.Category {
	return []*domain.Category{
		{ID: domain.CategoryAll, Label: "All"},
		{ID: "t-shirts", Label: "T-Shirts"},
		{ID: "polo", Label: "Polo"},
		{ID: "hoodies", Label: "Hoodies"},
		{ID: "jackets", Label: "Jackets"},
		{ID: "pants", Label: "Pants"},
		{ID: "accessories", Label: "Accessories"},
	}
}

// SeedProducts returns the full merchandise catalog.
func SeedProducts() []*domain.Product {
	apparelSizes := []string{"XS", "S", "M", "L", "XL", "XXL"}
	oneSize := []string{"One Size"}

	navy := domain.ProductVariant{ID: "navy", Name: "Navy", Color: "#1a3a6b"}
	white := domain.ProductVariant{ID: "white", Name: "White", Color: "#ffffff"}
	black := domain.ProductVariant{ID: "black", Name: "Black", Color: "#000000"}
	yellow := domain.ProductVariant{ID: "yellow", Name: "Yellow", Color: "#e8c232"}
	grey := domain.ProductVariant{ID: "grey", Name: "Grey", Color: "#888888"}

	return []*domain.Product{
		{
			ID:          "tshirt-basic",
			Name:        "Basic-T",
			Brand:       "Clique",
			Category:    "t-shirts",
			Price:       249,
			Description: "Classic Clique Basic-T. Comfortable everyday t-shirt with club branding. Made from 100% ring-spun cotton for a soft feel.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, white, black},
			Image:       "/images/tshirt-basic.svg",
		},
		{
			ID:          "tshirt-premium",
			Name:        "Premium-T",
			Brand:       "Clique",
			Category:    "t-shirts",
			Price:       349,
			Description: "Clique Premium-T with superior finish. Moisture-wicking fabric keeps you cool during training sessions.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, yellow, white},
			Image:       "/images/tshirt-premium.svg",
		},
		{
			ID:          "polo-classic",
			Name:        "Classic Polo",
			Brand:       "Clique",
			Category:    "polo",
			Price:       399,
			Description: "Clique Classic Polo shirt. Perfect for match days and club events. Slim fit with club embroidery.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, white, black},
			Image:       "/images/polo-classic.svg",
		},
		{
			ID:          "polo-premium",
			Name:        "Premium Polo",
			Brand:       "Clique",
			Category:    "polo",
			Price:       499,
			Description: "Clique Premium Polo with stretch fabric. Excellent comfort and style for club representatives.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, yellow},
			Image:       "/images/polo-premium.svg",
		},
		{
			ID:          "hoodie-basic",
			Name:        "Basic Hoodie",
			Brand:       "Clique",
			Category:    "hoodies",
			Price:       599,
			Description: "Clique Basic Hoodie. Warm and cozy with kangaroo pocket and adjustable drawstring.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, black, grey},
			Image:       "/images/hoodie-basic.svg",
		},
		{
			ID:          "hoodie-halfzip",
			Name:        "Half-Zip Hoodie",
			Brand:       "Clique",
			Category:    "hoodies",
			Price:       699,
			Description: "Clique Half-Zip Hoodie. Premium fleece with half-zip closure. Perfect for training and casual wear.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, yellow, black},
			Image:       "/images/hoodie-halfzip.svg",
		},
		{
			ID:          "jacket-softshell",
			Name:        "Softshell Jacket",
			Brand:       "Clique",
			Category:    "jackets",
			Price:       899,
			Description: "Clique Softshell Jacket. Wind and water resistant with breathable membrane. Ideal for outdoor training.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, black},
			Image:       "/images/jacket-softshell.svg",
		},
		{
			ID:          "jacket-padded",
			Name:        "Padded Jacket",
			Brand:       "Clique",
			Category:    "jackets",
			Price:       1099,
			Description: "Clique Padded Jacket. Warm and lightweight with club branding. Perfect for cold match days.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, black},
			Image:       "/images/jacket-padded.svg",
		},
		{
			ID:          "pants-sweatpants",
			Name:        "Sweatpants",
			Brand:       "Clique",
			Category:    "pants",
			Price:       449,
			Description: "Clique Sweatpants. Comfortable training pants with elastic waistband and side pockets.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, black, grey},
			Image:       "/images/pants-sweatpants.svg",
		},
		{
			ID:          "pants-shorts",
			Name:        "Training Shorts",
			Brand:       "Clique",
			Category:    "pants",
			Price:       299,
			Description: "Clique Training Shorts. Lightweight and breathable. Perfect for warm weather training.",
			Sizes:       apparelSizes,
			Variants:    []domain.ProductVariant{navy, black, yellow},
			Image:       "/images/pants-shorts.svg",
		},
		{
			ID:          "acc-cap",
			Name:        "Club Cap",
			Brand:       "Clique",
			Category:    "accessories",
			Price:       199,
			Description: "Clique Club Cap. Adjustable snapback with embroidered club logo. One size fits all.",
			Sizes:       oneSize,
			Variants:    []domain.ProductVariant{navy, black},
			Image:       "/images/acc-cap.svg",
		},
		{
			ID:          "acc-beanie",
			Name:        "Club Beanie",
			Brand:       "Clique",
			Category:    "accessories",
			Price:       149,
			Description: "Clique Club Beanie. Warm knitted beanie with club colors. Perfect for cold weather.",
			Sizes:       oneSize,
			Variants:    []domain.ProductVariant{navy, yellow, black},
			Image:       "/images/acc-beanie.svg",
		},
		{
			ID:          "acc-scarf",
			Name:        "Club Scarf",
			Brand:       "Clique",
			Category:    "accessories",
			Price:       179,
			Description: "Clique Club Scarf. Jacquard woven scarf with club colors and logo. Essential supporter gear.",
			Sizes:       oneSize,
			Variants: []domain.ProductVariant{
				{ID: "navy-yellow", Name: "Navy/Yellow", Color: "#1a3a6b"},
				{ID: "white-navy", Name: "White/Navy", Color: "#ffffff"},
			},
			Image: "/images/acc-scarf.svg",
		},
	}
}

// SeedClubs returns the registered clubs.
func SeedClubs() []*domain.Club {
	return []*domain.Club{
		{
			ID:             "uif",
			Slug:           "uppakra-if",
			Name:           "Uppåkra IF",
			PrimaryColor:   "#1a3a6b",
			SecondaryColor: "#e8c232",
			Logo:           "/images/uif-logo.png",
			BannerImage:    "/images/uif-banner.jpg",
			Description:    "Uppåkra IF — Din lokala fotbollsklubb",
			ActiveProductIDs: []string{
				"tshirt-basic",
				"tshirt-premium",
				"polo-classic",
				"polo-premium",
				"hoodie-basic",
				"hoodie-halfzip",
				"jacket-softshell",
				"jacket-padded",
				"pants-sweatpants",
				"pants-shorts",
				"acc-cap",
				"acc-beanie",
				"acc-scarf",
			},
		},
	}
}

// SeedCredentials returns the demo credential rows: one platform staff
// account and one club admin bound to Uppåkra IF.
func SeedCredentials() []CredentialSeed {
	return []CredentialSeed{
		{Username: "admin", Password: "admin123", Role: domain.RolePlatformStaff},
		{Username: "uif-admin", Password: "uif123", Role: domain.RoleClubAdmin, ClubID: "uif"},
	}
}

func orderTime(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

// SeedOrders returns the mock order history that feeds the dashboards.
func SeedOrders() []*domain.Order {
	return []*domain.Order{
		{
			ID: "ORD-2024-001", ClubID: "uif",
			CustomerName: "Erik Andersson", CustomerEmail: "erik.andersson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "tshirt-basic", ProductName: "Basic-T", Size: "L", Variant: "Navy", Quantity: 2, Price: 249},
				{ProductID: "hoodie-basic", ProductName: "Basic Hoodie", Size: "L", Variant: "Navy", Quantity: 1, Price: 599},
			},
			Total: 1097, DeliveryType: domain.DeliveryHome, Address: "Storgatan 12, 245 31 Staffanstorp",
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.November, 1, 10, 23), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-002", ClubID: "uif",
			CustomerName: "Maria Svensson", CustomerEmail: "maria.svensson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "polo-classic", ProductName: "Classic Polo", Size: "M", Variant: "Navy", Quantity: 1, Price: 399},
				{ProductID: "acc-cap", ProductName: "Club Cap", Size: "One Size", Variant: "Navy", Quantity: 1, Price: 199},
			},
			Total: 598, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.November, 3, 14, 10), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-003", ClubID: "uif",
			CustomerName: "Lars Nilsson", CustomerEmail: "lars.nilsson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "jacket-softshell", ProductName: "Softshell Jacket", Size: "XL", Variant: "Navy", Quantity: 1, Price: 899},
				{ProductID: "pants-sweatpants", ProductName: "Sweatpants", Size: "XL", Variant: "Navy", Quantity: 1, Price: 449},
			},
			Total: 1348, DeliveryType: domain.DeliveryHome, Address: "Parkvägen 8, 245 45 Hjärup",
			Status: domain.OrderShipped, CreatedAt: orderTime(time.November, 8, 9, 45), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-004", ClubID: "uif",
			CustomerName: "Anna Johansson", CustomerEmail: "anna.johansson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "tshirt-premium", ProductName: "Premium-T", Size: "S", Variant: "Yellow", Quantity: 1, Price: 349},
				{ProductID: "acc-beanie", ProductName: "Club Beanie", Size: "One Size", Variant: "Navy", Quantity: 1, Price: 149},
			},
			Total: 498, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.November, 10, 16, 30), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-005", ClubID: "uif",
			CustomerName: "Peter Gustafsson", CustomerEmail: "peter.gustafsson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "hoodie-halfzip", ProductName: "Half-Zip Hoodie", Size: "M", Variant: "Navy", Quantity: 1, Price: 699},
				{ProductID: "polo-premium", ProductName: "Premium Polo", Size: "M", Variant: "Navy", Quantity: 1, Price: 499},
			},
			Total: 1198, DeliveryType: domain.DeliveryHome, Address: "Idrottsvägen 3, 245 32 Staffanstorp",
			Status: domain.OrderProcessing, CreatedAt: orderTime(time.November, 15, 11, 20), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-006", ClubID: "uif",
			CustomerName: "Sofia Lindqvist", CustomerEmail: "sofia.lindqvist@email.com",
			Items: []domain.OrderItem{
				{ProductID: "acc-scarf", ProductName: "Club Scarf", Size: "One Size", Variant: "Navy/Yellow", Quantity: 2, Price: 179},
				{ProductID: "acc-cap", ProductName: "Club Cap", Size: "One Size", Variant: "Navy", Quantity: 1, Price: 199},
			},
			Total: 557, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.November, 18, 13, 55), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-007", ClubID: "uif",
			CustomerName: "Mikael Persson", CustomerEmail: "mikael.persson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "jacket-padded", ProductName: "Padded Jacket", Size: "L", Variant: "Navy", Quantity: 1, Price: 1099},
			},
			Total: 1099, DeliveryType: domain.DeliveryHome, Address: "Bollgatan 5, 245 33 Staffanstorp",
			Status: domain.OrderShipped, CreatedAt: orderTime(time.November, 22, 8, 30), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-008", ClubID: "uif",
			CustomerName: "Emma Carlsson", CustomerEmail: "emma.carlsson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "tshirt-basic", ProductName: "Basic-T", Size: "XS", Variant: "White", Quantity: 3, Price: 249},
				{ProductID: "pants-shorts", ProductName: "Training Shorts", Size: "S", Variant: "Navy", Quantity: 1, Price: 299},
			},
			Total: 1046, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.November, 25, 15, 40), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-009", ClubID: "uif",
			CustomerName: "Johan Magnusson", CustomerEmail: "johan.magnusson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "polo-classic", ProductName: "Classic Polo", Size: "XL", Variant: "Navy", Quantity: 1, Price: 399},
				{ProductID: "hoodie-basic", ProductName: "Basic Hoodie", Size: "XL", Variant: "Black", Quantity: 1, Price: 599},
				{ProductID: "acc-beanie", ProductName: "Club Beanie", Size: "One Size", Variant: "Yellow", Quantity: 1, Price: 149},
			},
			Total: 1147, DeliveryType: domain.DeliveryHome, Address: "Skolvägen 14, 245 41 Staffanstorp",
			Status: domain.OrderDelivered, CreatedAt: orderTime(time.December, 1, 10, 10), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-010", ClubID: "uif",
			CustomerName: "Karin Eriksson", CustomerEmail: "karin.eriksson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "tshirt-premium", ProductName: "Premium-T", Size: "M", Variant: "Navy", Quantity: 2, Price: 349},
			},
			Total: 698, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderProcessing, CreatedAt: orderTime(time.December, 3, 12, 0), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-011", ClubID: "uif",
			CustomerName: "Anders Bergström", CustomerEmail: "anders.bergstrom@email.com",
			Items: []domain.OrderItem{
				{ProductID: "jacket-softshell", ProductName: "Softshell Jacket", Size: "M", Variant: "Black", Quantity: 1, Price: 899},
				{ProductID: "pants-sweatpants", ProductName: "Sweatpants", Size: "M", Variant: "Black", Quantity: 1, Price: 449},
				{ProductID: "acc-cap", ProductName: "Club Cap", Size: "One Size", Variant: "Black", Quantity: 1, Price: 199},
			},
			Total: 1547, DeliveryType: domain.DeliveryHome, Address: "Furugatan 22, 245 34 Staffanstorp",
			Status: domain.OrderPending, CreatedAt: orderTime(time.December, 5, 9, 15), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-012", ClubID: "uif",
			CustomerName: "Lina Olsson", CustomerEmail: "lina.olsson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "hoodie-halfzip", ProductName: "Half-Zip Hoodie", Size: "S", Variant: "Yellow", Quantity: 1, Price: 699},
				{ProductID: "acc-scarf", ProductName: "Club Scarf", Size: "One Size", Variant: "Navy/Yellow", Quantity: 1, Price: 179},
			},
			Total: 878, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderProcessing, CreatedAt: orderTime(time.December, 6, 14, 25), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-013", ClubID: "uif",
			CustomerName: "Tobias Hansson", CustomerEmail: "tobias.hansson@email.com",
			Items: []domain.OrderItem{
				{ProductID: "polo-premium", ProductName: "Premium Polo", Size: "L", Variant: "Yellow", Quantity: 1, Price: 499},
				{ProductID: "pants-shorts", ProductName: "Training Shorts", Size: "L", Variant: "Black", Quantity: 2, Price: 299},
			},
			Total: 1097, DeliveryType: domain.DeliveryHome, Address: "Ljungvägen 7, 245 45 Hjärup",
			Status: domain.OrderPending, CreatedAt: orderTime(time.December, 7, 16, 50), PaymentMethod: domain.PaymentKlarna,
		},
		{
			ID: "ORD-2024-014", ClubID: "uif",
			CustomerName: "Helena Ström", CustomerEmail: "helena.strom@email.com",
			Items: []domain.OrderItem{
				{ProductID: "tshirt-basic", ProductName: "Basic-T", Size: "M", Variant: "Black", Quantity: 1, Price: 249},
				{ProductID: "acc-beanie", ProductName: "Club Beanie", Size: "One Size", Variant: "Black", Quantity: 1, Price: 149},
				{ProductID: "acc-cap", ProductName: "Club Cap", Size: "One Size", Variant: "Navy", Quantity: 1, Price: 199},
			},
			Total: 597, DeliveryType: domain.DeliveryClub,
			Status: domain.OrderPending, CreatedAt: orderTime(time.December, 8, 11, 5), PaymentMethod: domain.PaymentSwish,
		},
		{
			ID: "ORD-2024-015", ClubID: "uif",
			CustomerName: "Oskar Lindgren", CustomerEmail: "oskar.lindgren@email.com",
			Items: []domain.OrderItem{
				{ProductID: "jacket-padded", ProductName: "Padded Jacket", Size: "M", Variant: "Black", Quantity: 1, Price: 1099},
				{ProductID: "hoodie-basic", ProductName: "Basic Hoodie", Size: "M", Variant: "Grey", Quantity: 1, Price: 599},
			},
			Total: 1698, DeliveryType: domain.DeliveryHome, Address: "Ekvägen 19, 245 32 Staffanstorp",
			Status: domain.OrderPending, CreatedAt: orderTime(time.December, 8, 17, 30), PaymentMethod: domain.PaymentKlarna,
		},
	}
}
