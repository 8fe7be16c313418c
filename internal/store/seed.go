package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agrilink-backend/internal/models"
)

// Demo password shared by every seeded account.
const seedPassword = "agrilink123"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// seed loads the hardcoded demo dataset. Everything here is recreated on
// every process start; there is no persistence behind the store.
func (s *Store) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	pw := string(hash)

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	s.users = []models.User{
		{
			ID: "a1", Email: "admin@agrilink.example", Phone: "+254700000001",
			Name: "Amina Odhiambo", BusinessName: "AgriLink Operations",
			PasswordHash: pw, Role: models.UserRoleAdmin,
			CreatedAt: lastWeek, UpdatedAt: lastWeek,
		},
		{
			ID: "u2", Email: "greengrove@agrilink.example", Phone: "+254700000002",
			Name: "Daniel Mwangi", BusinessName: "GreenGrove Wholesale",
			PasswordHash: pw, Role: models.UserRoleWholesaler,
			Location:        strPtr("Nairobi"),
			BusinessProfile: &models.BusinessProfile{IsComplete: true},
			SellerInterests: []string{"Tomatoes", "Spinach", "Bananas"},
			CreatedAt:       lastWeek, UpdatedAt: lastWeek,
		},
		{
			ID: "u3", Email: "kimani.farm@agrilink.example", Phone: "+254700000003",
			Name: "Grace Kimani", BusinessName: "Kimani Family Farm",
			PasswordHash: pw, Role: models.UserRoleFarmer,
			Location:        strPtr("Nakuru"),
			BusinessProfile: &models.BusinessProfile{IsComplete: false},
			SellerInterests: []string{"Mangoes", "Avocados"},
			CreatedAt:       lastWeek, UpdatedAt: lastWeek,
		},
		{
			ID: "c1", Email: "mamanjeri@agrilink.example", Phone: "+254700000004",
			Name: "Njeri Kamau", BusinessName: "Mama Njeri Grocers",
			PasswordHash: pw, Role: models.UserRoleConsumer,
			Location:       strPtr("Nairobi"),
			BuyerInterests: []string{"Tomatoes", "Spinach"},
			CreatedAt:      lastWeek, UpdatedAt: lastWeek,
		},
		{
			ID: "r1", Email: "rep@agrilink.example", Phone: "+254700000005",
			Name: "Peter Otieno", BusinessName: "AgriLink Field Team",
			PasswordHash: pw, Role: models.UserRolePZRep,
			CommissionRate: floatPtr(2.5),
			CreatedAt:      lastWeek, UpdatedAt: lastWeek,
		},
	}

	s.products = []models.Product{
		{ID: "p1", Name: "Tomato", Category: models.ProductCategoryVegetable, Variety: "Roma", DefaultPricePerKg: 4.5, Unit: "kg", CO2SavingsPerKg: floatPtr(0.4), CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "p2", Name: "Spinach", Category: models.ProductCategoryVegetable, Variety: "Baby Leaf", DefaultPricePerKg: 3.0, Unit: "kg", CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "p3", Name: "Mango", Category: models.ProductCategoryFruit, Variety: "Apple Mango", DefaultPricePerKg: 6.0, Unit: "kg", CO2SavingsPerKg: floatPtr(0.6), CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "p4", Name: "Banana", Category: models.ProductCategoryFruit, Variety: "Cavendish", DefaultPricePerKg: 2.2, Unit: "kg", CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "p5", Name: "Carrot", Category: models.ProductCategoryVegetable, Variety: "Nantes", DefaultPricePerKg: 2.8, Unit: "kg", CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "p6", Name: "Avocado", Category: models.ProductCategoryFruit, Variety: "Hass", DefaultPricePerKg: 8.0, Unit: "kg", CreatedAt: lastWeek, UpdatedAt: lastWeek},
	}

	harvest := now.Add(-3 * 24 * time.Hour)
	s.inventory = []models.InventoryItem{
		{ID: "lot-1", SellerID: "u2", ProductID: "p1", QuantityKg: 500, Unit: "kg", LotNumber: "LOT-0001", HarvestLocation: "Kirinyaga", WarehouseLocation: "Nairobi A2", Status: models.LotStatusAvailable, HarvestedAt: &harvest, UploadedAt: yesterday},
		{ID: "lot-2", SellerID: "u2", ProductID: "p2", QuantityKg: 120, Unit: "kg", LotNumber: "LOT-0002", HarvestLocation: "Limuru", WarehouseLocation: "Nairobi A2", Status: models.LotStatusAvailable, UploadedAt: yesterday, DiscountRule: &models.DiscountRule{AfterDays: 2, DiscountPercent: 20}},
		{ID: "lot-3", SellerID: "u2", ProductID: "p4", QuantityKg: 300, Unit: "kg", LotNumber: "LOT-0003", HarvestLocation: "Meru", WarehouseLocation: "Nairobi B1", Status: models.LotStatusAvailable, UploadedAt: lastWeek},
		{ID: "lot-4", SellerID: "u3", ProductID: "p3", QuantityKg: 200, Unit: "kg", LotNumber: "LOT-0004", HarvestLocation: "Nakuru", Status: models.LotStatusAvailable, HarvestedAt: &harvest, UploadedAt: yesterday},
		{ID: "lot-5", SellerID: "u3", ProductID: "p6", QuantityKg: 80, Unit: "kg", LotNumber: "LOT-0005", HarvestLocation: "Nakuru", Status: models.LotStatusDonated, UploadedAt: lastWeek},
	}

	if s.formTemplates == nil {
		s.formTemplates = make(map[models.UserRole]models.FormTemplate)
	}
	s.formTemplates[models.UserRoleConsumer] = models.FormTemplate{
		Role:  models.UserRoleConsumer,
		Title: "Buyer registration",
		Fields: []models.FormField{
			{Name: "businessName", Label: "Business name", Type: models.FormFieldText, Required: true},
			{Name: "contactName", Label: "Contact person", Type: models.FormFieldText, Required: true},
			{Name: "monthlySpend", Label: "Monthly produce spend", Type: models.FormFieldNumber},
			{Name: "invoice", Label: "Recent supplier invoice", Type: models.FormFieldFile},
			{Name: "location", Label: "Delivery location", Type: models.FormFieldText, Required: true},
		},
	}
	s.formTemplates[models.UserRoleWholesaler] = models.FormTemplate{
		Role:  models.UserRoleWholesaler,
		Title: "Wholesaler registration",
		Fields: []models.FormField{
			{Name: "businessName", Label: "Business name", Type: models.FormFieldText, Required: true},
			{Name: "contactName", Label: "Contact person", Type: models.FormFieldText, Required: true},
			{Name: "warehouse", Label: "Warehouse location", Type: models.FormFieldText, Required: true},
		},
	}
	s.formTemplates[models.UserRoleFarmer] = models.FormTemplate{
		Role:  models.UserRoleFarmer,
		Title: "Farmer registration",
		Fields: []models.FormField{
			{Name: "businessName", Label: "Farm name", Type: models.FormFieldText, Required: true},
			{Name: "contactName", Label: "Contact person", Type: models.FormFieldText, Required: true},
			{Name: "county", Label: "County", Type: models.FormFieldSelect, Required: true, Options: []string{"Nairobi", "Nakuru", "Meru", "Kirinyaga"}},
		},
	}

	// Five demo orders between Mama Njeri Grocers (c1) and GreenGrove
	// Wholesale (u2), one per lifecycle stage.
	packedAt := yesterday.Add(2 * time.Hour)
	deliveredAt := yesterday.Add(8 * time.Hour)
	s.orders = []models.Order{
		{ID: "ord-1", BuyerID: "c1", SellerID: "u2", Items: []models.OrderItem{{ProductID: "p1", QuantityKg: 50, PricePerKg: 4.5}}, TotalAmount: 225, Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid, CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "ord-2", BuyerID: "c1", SellerID: "u2", Items: []models.OrderItem{{ProductID: "p2", QuantityKg: 20, PricePerKg: 3.0}}, TotalAmount: 60, Status: models.OrderStatusConfirmed, PaymentStatus: models.PaymentStatusUnpaid, CreatedAt: yesterday, UpdatedAt: yesterday},
		{ID: "ord-3", BuyerID: "c1", SellerID: "u2", Items: []models.OrderItem{{ProductID: "p1", QuantityKg: 30, PricePerKg: 4.5}, {ProductID: "p4", QuantityKg: 40, PricePerKg: 2.2}}, TotalAmount: 223, Status: models.OrderStatusReadyForDelivery, PaymentStatus: models.PaymentStatusUnpaid, PackedBy: "Joseph Maina", PackedAt: &packedAt, CreatedAt: yesterday, UpdatedAt: packedAt},
		{ID: "ord-4", BuyerID: "c1", SellerID: "u2", Items: []models.OrderItem{{ProductID: "p4", QuantityKg: 100, PricePerKg: 2.2}}, TotalAmount: 220, Status: models.OrderStatusShipped, PaymentStatus: models.PaymentStatusPaid, Logistics: &models.Logistics{DriverID: strPtr("drv-1"), DriverName: "Samuel Kiprop", DeliveryDate: now.Format("2006-01-02"), DeliveryTime: "14:00", DeliveryLocation: "Wakulima Market"}, CreatedAt: yesterday, UpdatedAt: now.Add(-1 * time.Hour)},
		{ID: "ord-5", BuyerID: "c1", SellerID: "u2", Items: []models.OrderItem{{ProductID: "p2", QuantityKg: 15, PricePerKg: 3.0}}, TotalAmount: 45, Status: models.OrderStatusDelivered, PaymentStatus: models.PaymentStatusPaid, DeliveredAt: &deliveredAt, CreatedAt: lastWeek, UpdatedAt: deliveredAt},
	}

	s.customers = []models.Customer{
		{ID: "cust-1", UserID: strPtr("c1"), BusinessName: "Mama Njeri Grocers", ContactName: "Njeri Kamau", Email: "mamanjeri@agrilink.example", Phone: "+254700000004", Category: "Grocery", Location: "Nairobi", CommonProducts: "Tomatoes, Spinach, Bananas", ConnectionStatus: models.ConnectionStatusActive, SupplierID: strPtr("u2"), MarkupPercent: floatPtr(12), AssignedRepID: strPtr("r1"), CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "cust-2", BusinessName: "Highlands Hotel Kitchen", ContactName: "John Baraka", Category: "Hospitality", Location: "Naivasha", CommonProducts: "Carrots, Onions, Potatoes", ConnectionStatus: models.ConnectionStatusPricingPending, CreatedAt: lastWeek, UpdatedAt: lastWeek},
		{ID: "cust-3", BusinessName: "Fresh Basket Deli", ContactName: "Wanjiku Ndung'u", Category: "Retail", Location: "Nairobi", CommonProducts: "Avocados, Mangoes, Tomatoes", ConnectionStatus: models.ConnectionStatusPending, CreatedAt: yesterday, UpdatedAt: yesterday},
	}

	s.drivers = []models.Driver{
		{ID: "drv-1", WholesalerID: "u2", Name: "Samuel Kiprop", Phone: "+254711000001", VehicleReg: "KDA 123A", CreatedAt: lastWeek},
		{ID: "drv-2", WholesalerID: "u2", Name: "Esther Achieng", Phone: "+254711000002", VehicleReg: "KDB 456B", CreatedAt: lastWeek},
	}
	s.packers = []models.Packer{
		{ID: "pkr-1", WholesalerID: "u2", Name: "Joseph Maina", Phone: "+254711000003", CreatedAt: lastWeek},
		{ID: "pkr-2", WholesalerID: "u2", Name: "Faith Wambui", Phone: "+254711000004", CreatedAt: lastWeek},
	}

	s.registrations = []models.RegistrationRequest{
		{ID: "reg-1", Role: models.UserRoleConsumer, BusinessName: "Sunrise Cafe", ContactName: "Ali Hassan", Email: "sunrise@agrilink.example", Phone: "+254722000001", Status: models.RegistrationStatusPending, Consumer: &models.ConsumerDetails{MonthlySpend: 1500, InvoiceFileName: "invoice-march.pdf", Location: "Mombasa"}, CreatedAt: yesterday},
		{ID: "reg-2", Role: models.UserRoleFarmer, BusinessName: "Chebet Orchards", ContactName: "Ruth Chebet", Email: "chebet@agrilink.example", Phone: "+254722000002", Status: models.RegistrationStatusPending, CreatedAt: now.Add(-3 * time.Hour)},
	}

	s.priceRequests = []models.SupplierPriceRequest{
		{ID: "rfq-1", SupplierID: "u2", IssuedByID: "a1", CustomerName: "Highlands Hotel Kitchen", CustomerCategory: "Hospitality", CustomerLocation: "Naivasha", Items: []models.PriceRequestItem{
			{ProductName: "Tomato", TargetPrice: 4.2},
			{ProductName: "Carrot", TargetPrice: 2.5},
		}, Status: models.PriceRequestStatusPending, CreatedAt: yesterday},
	}

	s.notifications = []models.AppNotification{
		{ID: "ntf-1", UserID: "u2", Title: "New order", Message: "Mama Njeri Grocers placed an order for 50 kg of Tomato", Type: models.NotificationTypeOrder, Link: "/orders/ord-1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "ntf-2", UserID: "u2", Title: "Price request", Message: "Admin requested quotes for Highlands Hotel Kitchen", Type: models.NotificationTypePricing, Link: "/price-requests/rfq-1", CreatedAt: yesterday},
		{ID: "ntf-3", UserID: "c1", Title: "Order shipped", Message: "Your banana order is on the way", Type: models.NotificationTypeOrder, Link: "/orders/ord-4", IsRead: true, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "ntf-4", UserID: "a1", Title: "Registration pending", Message: "Sunrise Cafe is waiting for review", Type: models.NotificationTypeRegistration, Link: "/registrations/reg-1", CreatedAt: yesterday},
	}

	s.chatMessages = []models.ChatMessage{
		{ID: "msg-1", SenderID: "c1", ReceiverID: "u2", Text: "Do you have Roma tomatoes this week?", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "msg-2", SenderID: "u2", ReceiverID: "c1", Text: "Yes, 500 kg fresh from Kirinyaga. Want me to reserve some?", CreatedAt: now.Add(-170 * time.Minute)},
	}

	s.pricingRules = []models.PricingRule{
		{ID: "rule-1", SellerID: "u2", LotID: "lot-2", ProductID: "p2", AfterDays: 2, DiscountPercent: 20, CreatedAt: yesterday},
	}
}
