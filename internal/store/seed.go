package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
)

// Seed loads the demonstration data set shipped with the product. It is
// meant for fresh installations and local development; Seed replaces
// whatever the collections currently hold.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	hoursAgo := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	daysAgo := func(d, h int) time.Time { return now.Add(-time.Duration(d*24+h) * time.Hour) }

	s.items = []models.StockItem{
		{
			ID: "P001", Name: "iPhone 15 Pro", Category: "Électronique",
			CurrentStock: 25, MinStock: 10, MaxStock: 100, Price: 1199.99,
			Supplier: "Apple Inc.", LastUpdate: hoursAgo(2), Status: models.StockInStock,
		},
		{
			ID: "P002", Name: "Samsung Galaxy S24", Category: "Électronique",
			CurrentStock: 8, MinStock: 15, MaxStock: 80, Price: 899.99,
			Supplier: "Samsung", LastUpdate: hoursAgo(1), Status: models.StockLowStock,
		},
		{
			ID: "P003", Name: "MacBook Air M3", Category: "Informatique",
			CurrentStock: 0, MinStock: 5, MaxStock: 50, Price: 1299.99,
			Supplier: "Apple Inc.", LastUpdate: now.Add(-30 * time.Minute), Status: models.StockOutOfStock,
		},
		{
			ID: "P004", Name: "AirPods Pro", Category: "Accessoires",
			CurrentStock: 150, MinStock: 20, MaxStock: 200, Price: 249.99,
			Supplier: "Apple Inc.", LastUpdate: hoursAgo(3), Status: models.StockOverstocked,
		},
	}

	s.entries = []models.StockEntry{
		{
			ID: "E001", ProductName: "iPhone 15 Pro Max", Category: "Électronique",
			Quantity: 50, UnitPrice: 1199.99, TotalValue: 59999.50,
			Supplier: "Apple Inc.", EntryDate: hoursAgo(2), BatchNumber: "APL2024001",
			Status: models.EntryReceived, Notes: "Livraison conforme, emballage parfait",
		},
		{
			ID: "E002", ProductName: "Samsung Galaxy S24 Ultra", Category: "Électronique",
			Quantity: 30, UnitPrice: 1299.99, TotalValue: 38999.70,
			Supplier: "Samsung Electronics", EntryDate: hoursAgo(4), BatchNumber: "SAM2024002",
			Status: models.EntryValidated, Notes: "En attente de réception",
		},
	}

	s.exits = []models.StockExit{
		{
			ID: "S001", ProductName: "iPhone 15 Pro Max", Category: "Électronique",
			Quantity: 2, UnitPrice: 1199.99, TotalValue: 2399.98,
			Customer: "TechStore Paris", ExitDate: hoursAgo(1), OrderNumber: "CMD2024001",
			DeliveryAddress: "123 Rue de Rivoli, 75001 Paris", Status: models.ExitShipped,
			Notes: "Livraison express demandée", Urgency: models.UrgencyHigh,
		},
		{
			ID: "S002", ProductName: "Samsung Galaxy S24 Ultra", Category: "Électronique",
			Quantity: 1, UnitPrice: 1299.99, TotalValue: 1299.99,
			Customer: "Mobile World Lyon", ExitDate: hoursAgo(3), OrderNumber: "CMD2024002",
			DeliveryAddress: "45 Place Bellecour, 69002 Lyon", Status: models.ExitDelivered,
			Notes: "Client satisfait, livraison réussie", Urgency: models.UrgencyLow,
		},
	}

	s.suppliers = []models.Supplier{
		{
			ID: "SUP001", Name: "Apple Inc.", Category: "Électronique",
			ContactPerson: "Jean Dupont", Email: "contact@apple-france.com",
			Phone: "+33 1 23 45 67 89", Address: "12 Rue de Rivoli", City: "Paris", Country: "France",
			ProductsCount: 25, TotalOrders: 156, TotalValue: 2500000, Rating: 4.9,
			Status: models.SupplierActive, Reliability: models.ReliabilityExcellent,
			LastOrderDate: daysAgo(1, 2), PaymentTerms: "30 jours",
			Notes: "Fournisseur premium avec excellent service client",
		},
		{
			ID: "SUP002", Name: "Samsung Electronics", Category: "Électronique",
			ContactPerson: "Marie Martin", Email: "pro@samsung.fr",
			Phone: "+33 1 34 56 78 90", Address: "45 Avenue des Champs-Élysées", City: "Paris", Country: "France",
			ProductsCount: 32, TotalOrders: 203, TotalValue: 1800000, Rating: 4.7,
			Status: models.SupplierActive, Reliability: models.ReliabilityExcellent,
			LastOrderDate: daysAgo(1, 5), PaymentTerms: "45 jours",
			Notes: "Partenaire stratégique depuis 5 ans",
		},
		{
			ID: "SUP003", Name: "Dell Technologies", Category: "Informatique",
			ContactPerson: "Pierre Dubois", Email: "business@dell.fr",
			Phone: "+33 1 45 67 89 01", Address: "78 Boulevard Haussmann", City: "Paris", Country: "France",
			ProductsCount: 18, TotalOrders: 89, TotalValue: 950000, Rating: 4.3,
			Status: models.SupplierActive, Reliability: models.ReliabilityGood,
			LastOrderDate: daysAgo(1, 10), PaymentTerms: "30 jours",
			Notes: "Bon rapport qualité-prix",
		},
		{
			ID: "SUP004", Name: "Sony Corporation", Category: "Audio/Vidéo",
			ContactPerson: "Sophie Leroy", Email: "pro@sony.fr",
			Phone: "+33 1 56 78 90 12", Address: "23 Rue de la Paix", City: "Lyon", Country: "France",
			ProductsCount: 15, TotalOrders: 67, TotalValue: 720000, Rating: 4.5,
			Status: models.SupplierActive, Reliability: models.ReliabilityGood,
			LastOrderDate: daysAgo(1, 7), PaymentTerms: "60 jours",
			Notes: "Spécialiste audio haut de gamme",
		},
		{
			ID: "SUP005", Name: "Microsoft France", Category: "Logiciels",
			ContactPerson: "Thomas Bernard", Email: "enterprise@microsoft.fr",
			Phone: "+33 1 67 89 01 23", Address: "39 Quai du Président Roosevelt", City: "Issy-les-Moulineaux", Country: "France",
			ProductsCount: 12, TotalOrders: 45, TotalValue: 580000, Rating: 4.1,
			Status: models.SupplierPending, Reliability: models.ReliabilityAverage,
			LastOrderDate: daysAgo(1, 20), PaymentTerms: "30 jours",
			Notes: "En cours de négociation contrat",
		},
		{
			ID: "SUP006", Name: "Xiaomi France", Category: "Électronique",
			ContactPerson: "Amélie Rousseau", Email: "b2b@xiaomi.fr",
			Phone: "+33 1 78 90 12 34", Address: "15 Rue du Commerce", City: "Marseille", Country: "France",
			ProductsCount: 28, TotalOrders: 134, TotalValue: 650000, Rating: 3.8,
			Status: models.SupplierActive, Reliability: models.ReliabilityAverage,
			LastOrderDate: daysAgo(1, 3), PaymentTerms: "45 jours",
			Notes: "Bon rapport qualité-prix, délais parfois longs",
		},
		{
			ID: "SUP007", Name: "HP Enterprise", Category: "Informatique",
			ContactPerson: "Nicolas Moreau", Email: "channel@hpe.fr",
			Phone: "+33 1 89 01 23 45", Address: "92 Avenue de la Grande Armée", City: "Paris", Country: "France",
			ProductsCount: 8, TotalOrders: 23, TotalValue: 180000, Rating: 3.2,
			Status: models.SupplierBlocked, Reliability: models.ReliabilityPoor,
			LastOrderDate: daysAgo(1, 45), PaymentTerms: "30 jours",
			Notes: "Problèmes de qualité récurrents - En révision",
		},
	}

	s.notify(KindItems)
	s.notify(KindEntries)
	s.notify(KindExits)
	s.notify(KindSuppliers)
	s.logger.Info("sample data loaded",
		zap.Int("items", len(s.items)), zap.Int("entries", len(s.entries)),
		zap.Int("exits", len(s.exits)), zap.Int("suppliers", len(s.suppliers)))
}
