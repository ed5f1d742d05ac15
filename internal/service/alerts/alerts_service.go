package alerts

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/store"
	"github.com/babetech/borastock/pkg/clients/webhook"
)

// Alert is the webhook payload describing one item needing restocking.
type Alert struct {
	ItemID       string    `json:"item_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	Supplier     string    `json:"supplier"`
	RaisedAt     time.Time `json:"raised_at"`
}

// Service scans the item collection and notifies the configured webhook
// about items at or below their minimum stock.
type Service struct {
	store  *store.Store
	client webhook.Client
	logger *zap.Logger
}

// NewService wires a new alert service instance.
func NewService(st *store.Store, client webhook.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, client: client, logger: logger}
}

// ScanAndNotify posts one alert per low or out-of-stock item and
// returns the alerts raised.
func (s *Service) ScanAndNotify(ctx context.Context) ([]Alert, error) {
	now := time.Now()
	var raised []Alert

	for _, item := range s.store.Items() {
		if item.Status != models.StockLowStock && item.Status != models.StockOutOfStock {
			continue
		}

		alert := Alert{
			ItemID:       item.ID,
			Name:         item.Name,
			Category:     item.Category,
			CurrentStock: item.CurrentStock,
			MinStock:     item.MinStock,
			Status:       string(item.Status),
			StatusLabel:  item.Status.Label(),
			Supplier:     item.Supplier,
			RaisedAt:     now,
		}

		if err := s.client.Post(ctx, alert); err != nil {
			return raised, fmt.Errorf("notify alert for %s: %w", item.ID, err)
		}

		s.logger.Info("stock alert sent",
			zap.String("item", item.ID),
			zap.String("status", string(item.Status)),
			zap.Int("current", item.CurrentStock))
		raised = append(raised, alert)
	}

	return raised, nil
}
