package catalog

import (
	"time"

	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// FixtureCategories returns the storefront's browsing categories.
func FixtureCategories() []Category {
	return []Category{
		{ID: "1", Name: "Appetizers", ImageURL: "https://images.pexels.com/photos/1213271/pexels-photo-1213271.jpeg?auto=compress&cs=tinysrgb&w=600"},
		{ID: "2", Name: "Main Courses", ImageURL: "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg?auto=compress&cs=tinysrgb&w=600"},
		{ID: "3", Name: "Salads", ImageURL: "https://images.pexels.com/photos/1059905/pexels-photo-1059905.jpeg?auto=compress&cs=tinysrgb&w=600"},
		{ID: "4", Name: "Desserts", ImageURL: "https://images.pexels.com/photos/1126359/pexels-photo-1126359.jpeg?auto=compress&cs=tinysrgb&w=600"},
		{ID: "5", Name: "Beverages", ImageURL: "https://images.pexels.com/photos/452737/pexels-photo-452737.jpeg?auto=compress&cs=tinysrgb&w=600"},
	}
}

// FixtureItems returns the full menu.
func FixtureItems() []Item {
	return []Item{
		{
			ID:          "101",
			Name:        "Crispy Calamari",
			Description: "Tender calamari lightly fried to perfection, served with our house marinara sauce.",
			Price:       price("12.99"),
			ImageURL:    "https://images.pexels.com/photos/566345/pexels-photo-566345.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:  "1",
			IsPopular:   true,
			Options: []OptionGroup{
				{
					ID:   "opt1",
					Name: "Dipping Sauce",
					Choices: []Choice{
						{ID: "c1", Name: "Marinara", Price: price("0")},
						{ID: "c2", Name: "Garlic Aioli", Price: price("0")},
						{ID: "c3", Name: "Spicy Mayo", Price: price("0.50")},
					},
					Required:    true,
					MultiSelect: false,
				},
			},
		},
		{
			ID:           "102",
			Name:         "Bruschetta",
			Description:  "Toasted baguette topped with fresh tomatoes, basil, garlic, and extra virgin olive oil.",
			Price:        price("9.99"),
			ImageURL:     "https://images.pexels.com/photos/7937469/pexels-photo-7937469.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:   "1",
			IsVegetarian: true,
		},
		{
			ID:          "201",
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon grilled to perfection, served with seasonal vegetables and lemon herb sauce.",
			Price:       price("24.99"),
			ImageURL:    "https://images.pexels.com/photos/3763847/pexels-photo-3763847.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:  "2",
			IsPopular:   true,
			Options: []OptionGroup{
				{
					ID:   "opt2",
					Name: "Cooking Preference",
					Choices: []Choice{
						{ID: "c4", Name: "Medium Rare", Price: price("0")},
						{ID: "c5", Name: "Medium", Price: price("0")},
						{ID: "c6", Name: "Well Done", Price: price("0")},
					},
					Required:    true,
					MultiSelect: false,
				},
				{
					ID:   "opt3",
					Name: "Side",
					Choices: []Choice{
						{ID: "c7", Name: "Roasted Potatoes", Price: price("0")},
						{ID: "c8", Name: "Steamed Rice", Price: price("0")},
						{ID: "c9", Name: "Quinoa", Price: price("1.50")},
					},
					Required:    true,
					MultiSelect: false,
				},
			},
		},
		{
			ID:           "202",
			Name:         "Fettuccine Alfredo",
			Description:  "Homemade fettuccine pasta in a rich, creamy Alfredo sauce with Parmesan cheese.",
			Price:        price("18.99"),
			ImageURL:     "https://images.pexels.com/photos/1527603/pexels-photo-1527603.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:   "2",
			IsVegetarian: true,
			Options: []OptionGroup{
				{
					ID:   "opt4",
					Name: "Add Protein",
					Choices: []Choice{
						{ID: "c10", Name: "Grilled Chicken", Price: price("4.99")},
						{ID: "c11", Name: "Shrimp", Price: price("5.99")},
						{ID: "c12", Name: "None", Price: price("0")},
					},
					Required:    true,
					MultiSelect: false,
				},
			},
		},
		{
			ID:          "301",
			Name:        "Caesar Salad",
			Description: "Crisp romaine lettuce, Parmesan cheese, and croutons tossed in our homemade Caesar dressing.",
			Price:       price("10.99"),
			ImageURL:    "https://images.pexels.com/photos/2097090/pexels-photo-2097090.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:  "3",
			Options: []OptionGroup{
				{
					ID:   "opt5",
					Name: "Add Protein",
					Choices: []Choice{
						{ID: "c13", Name: "Grilled Chicken", Price: price("4.99")},
						{ID: "c14", Name: "Shrimp", Price: price("5.99")},
						{ID: "c15", Name: "None", Price: price("0")},
					},
					Required:    true,
					MultiSelect: false,
				},
			},
		},
		{
			ID:           "401",
			Name:         "Chocolate Lava Cake",
			Description:  "Warm chocolate cake with a molten center, served with vanilla ice cream.",
			Price:        price("8.99"),
			ImageURL:     "https://images.pexels.com/photos/132694/pexels-photo-132694.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:   "4",
			IsPopular:    true,
			IsVegetarian: true,
		},
		{
			ID:           "501",
			Name:         "Fresh Lemonade",
			Description:  "Handcrafted lemonade made with fresh lemons and a hint of mint.",
			Price:        price("4.99"),
			ImageURL:     "https://images.pexels.com/photos/2109099/pexels-photo-2109099.jpeg?auto=compress&cs=tinysrgb&w=600",
			CategoryID:   "5",
			IsVegetarian: true,
		},
	}
}

// FixturePromotions returns the marketing banners shown on the home screen.
func FixturePromotions() []Promotion {
	return []Promotion{
		{
			ID:           "1",
			Title:        "Free Delivery on Your First Order",
			Description:  "Use code WELCOME for free delivery on your first order!",
			ImageURL:     "https://images.pexels.com/photos/6036086/pexels-photo-6036086.jpeg?auto=compress&cs=tinysrgb&w=600",
			Discount:     price("0"),
			DiscountType: enums.DiscountTypeFixed,
			Code:         "WELCOME",
			ValidUntil:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Title:        "20% Off Family Meals",
			Description:  "Order any family meal and get 20% off with code FAMILY20",
			ImageURL:     "https://images.pexels.com/photos/3184183/pexels-photo-3184183.jpeg?auto=compress&cs=tinysrgb&w=600",
			Discount:     price("20"),
			DiscountType: enums.DiscountTypePercentage,
			Code:         "FAMILY20",
			ValidUntil:   time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			Title:        "Free Dessert with Orders Over $50",
			Description:  "Spend $50 or more and get a free dessert of your choice!",
			ImageURL:     "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg?auto=compress&cs=tinysrgb&w=600",
			Discount:     price("0"),
			DiscountType: enums.DiscountTypeFixed,
			Code:         "SWEETDEAL",
			ValidUntil:   time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}
