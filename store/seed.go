package store

import (
	"time"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// Seed returns the demo catalogue the store starts from: 8 listings, one of
// them (id 3) still pending approval, ids 1-3 all belonging to owner "1".
func Seed() []models.Property {
	return []models.Property{
		{
			ID:       1,
			Title:    "Luxurious 2 BHK Apartment in BTM Layout",
			Location: "BTM Layout, Bangalore, Karnataka",
			Price:    25000,
			Type:     "Apartment",
			BHK:      "2 BHK",
			Area:     1200,
			Images: []string{
				"https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1527576539890-dfa815648363?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1488972685288-c3fd157d7c7a?w=800&h=600&fit=crop",
			},
			VideoURL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Featured:      true,
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Gym", "Swimming Pool", "Security", "Power Backup", "Wi-Fi"},
			Description:   "Beautiful 2 BHK apartment located in the heart of BTM Layout. This property offers modern amenities and excellent connectivity to major IT hubs.",
			OwnerName:     "Rajesh Kumar",
			OwnerPhone:    "+91 9876543210",
			OwnerID:       "1",
			AdminApproved: true,
			CreatedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:       2,
			Title:    "Spacious 3 BHK Villa in Whitefield",
			Location: "Whitefield, Bangalore, Karnataka",
			Price:    45000,
			Type:     "Villa",
			BHK:      "3 BHK",
			Area:     2200,
			Images: []string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop",
			},
			Featured:      true,
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Garden", "Security", "Power Backup"},
			Description:   "Elegant 3 BHK villa with modern amenities and beautiful garden. Located in the premium area of Whitefield.",
			OwnerName:     "Rajesh Kumar",
			OwnerPhone:    "+91 9876543210",
			OwnerID:       "1",
			AdminApproved: true,
			CreatedAt:     time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:       3,
			Title:    "Modern 1 BHK Studio in Koramangala",
			Location: "Koramangala, Bangalore, Karnataka",
			Price:    18000,
			Type:     "Studio",
			BHK:      "1 BHK",
			Area:     650,
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop",
			},
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Wi-Fi", "Gym", "Security"},
			Description:   "Compact and modern 1 BHK studio perfect for young professionals. Located in the vibrant Koramangala area.",
			OwnerName:     "Rajesh Kumar",
			OwnerPhone:    "+91 9876543210",
			OwnerID:       "1",
			AdminApproved: false,
			CreatedAt:     time.Date(2024, 1, 8, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:       4,
			Title:    "Elegant 4+ BHK House for Sale in Indiranagar",
			Location: "Indiranagar, Bangalore, Karnataka",
			Price:    8500000,
			Type:     "House",
			BHK:      "4+ BHK",
			Area:     3200,
			Images: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
			},
			Status:        models.StatusAvailable,
			ListingType:   models.ListingSale,
			Amenities:     []string{"Parking", "Garden", "Security", "Power Backup", "Swimming Pool"},
			Description:   "Luxurious 4+ BHK house with premium amenities and spacious rooms. Perfect for large families.",
			OwnerName:     "Suresh Reddy",
			OwnerPhone:    "+91 9876543213",
			OwnerID:       "4",
			AdminApproved: true,
			CreatedAt:     time.Date(2024, 1, 5, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:       5,
			Title:    "Cozy 2 BHK Apartment in Jayanagar",
			Location: "Jayanagar, Bangalore, Karnataka",
			Price:    22000,
			Type:     "Apartment",
			BHK:      "2 BHK",
			Area:     1100,
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800&h=600&fit=crop",
			},
			Featured:      true,
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Security"},
			Description:   "Comfortable 2 BHK apartment in the heart of Jayanagar. Close to metro station and shopping centers.",
			OwnerName:     "Lakshmi Iyer",
			OwnerPhone:    "+91 9876543214",
			OwnerID:       "5",
			AdminApproved: true,
			CreatedAt:     time.Date(2024, 1, 3, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:       6,
			Title:    "Premium 3 BHK Penthouse in HSR Layout",
			Location: "HSR Layout, Bangalore, Karnataka",
			Price:    55000,
			Type:     "Penthouse",
			BHK:      "3 BHK",
			Area:     2500,
			Images: []string{
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&h=600&fit=crop",
			},
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Gym", "Swimming Pool", "Security", "Elevator", "Balcony"},
			Description:   "Stunning penthouse with panoramic city views. Premium location with all modern amenities.",
			OwnerName:     "Vikram Singh",
			OwnerPhone:    "+91 9876543215",
			OwnerID:       "6",
			AdminApproved: true,
			CreatedAt:     time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:       7,
			Title:    "Affordable 1 BHK in Electronic City",
			Location: "Electronic City, Bangalore, Karnataka",
			Price:    15000,
			Type:     "Apartment",
			BHK:      "1 BHK",
			Area:     580,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop",
			},
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Security", "Power Backup"},
			Description:   "Budget-friendly 1 BHK apartment perfect for IT professionals working in Electronic City.",
			OwnerName:     "Ravi Kumar",
			OwnerPhone:    "+91 9876543216",
			OwnerID:       "7",
			AdminApproved: true,
			CreatedAt:     time.Date(2023, 12, 28, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       8,
			Title:    "Luxury 2 BHK with Garden in Hebbal",
			Location: "Hebbal, Bangalore, Karnataka",
			Price:    35000,
			Type:     "Apartment",
			BHK:      "2 BHK",
			Area:     1400,
			Images: []string{
				"https://images.unsplash.com/photo-1505843795480-5cfb3c03f6ff?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1574362848149-11496d93a7c7?w=800&h=600&fit=crop",
			},
			Featured:      true,
			Status:        models.StatusAvailable,
			ListingType:   models.ListingRent,
			Amenities:     []string{"Parking", "Garden", "Swimming Pool", "Gym", "Security", "Wi-Fi"},
			Description:   "Beautiful 2 BHK apartment with private garden access. Premium gated community near Hebbal Lake.",
			OwnerName:     "Meera Nair",
			OwnerPhone:    "+91 9876543217",
			OwnerID:       "8",
			AdminApproved: true,
			CreatedAt:     time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC),
		},
	}
}
