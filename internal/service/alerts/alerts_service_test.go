package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/store"
)

type fakeWebhook struct {
	posted []any
	err    error
}

func (c *fakeWebhook) Post(_ context.Context, payload any) error {
	if c.err != nil {
		return c.err
	}
	c.posted = append(c.posted, payload)
	return nil
}

func TestScanAndNotifyRaisesForLowAndOutOfStock(t *testing.T) {
	st := store.New(nil)
	st.AddItem(models.StockItem{Name: "Clavier", CurrentStock: 50, MinStock: 10, MaxStock: 100})
	low := st.AddItem(models.StockItem{Name: "Souris", CurrentStock: 5, MinStock: 10, MaxStock: 100})
	out := st.AddItem(models.StockItem{Name: "Webcam", CurrentStock: 0, MinStock: 5, MaxStock: 50})

	client := &fakeWebhook{}
	svc := NewService(st, client, nil)

	raised, err := svc.ScanAndNotify(context.Background())
	if err != nil {
		t.Fatalf("ScanAndNotify: %v", err)
	}
	if len(raised) != 2 {
		t.Fatalf("raised %d alerts, want 2", len(raised))
	}
	if len(client.posted) != 2 {
		t.Fatalf("posted %d payloads, want 2", len(client.posted))
	}

	byID := map[string]Alert{}
	for _, a := range raised {
		byID[a.ItemID] = a
	}
	if a, ok := byID[low.ID]; !ok || a.Status != string(models.StockLowStock) {
		t.Errorf("low stock alert = %+v", a)
	}
	if a, ok := byID[out.ID]; !ok || a.Status != string(models.StockOutOfStock) {
		t.Errorf("out of stock alert = %+v", a)
	}
	if a := byID[low.ID]; a.StatusLabel != "Stock faible" {
		t.Errorf("StatusLabel = %q, want %q", a.StatusLabel, "Stock faible")
	}
}

func TestScanAndNotifyNoAlertsWhenHealthy(t *testing.T) {
	st := store.New(nil)
	st.AddItem(models.StockItem{Name: "Clavier", CurrentStock: 50, MinStock: 10, MaxStock: 100})

	client := &fakeWebhook{}
	raised, err := NewService(st, client, nil).ScanAndNotify(context.Background())
	if err != nil {
		t.Fatalf("ScanAndNotify: %v", err)
	}
	if len(raised) != 0 || len(client.posted) != 0 {
		t.Errorf("raised = %d, posted = %d, want 0 and 0", len(raised), len(client.posted))
	}
}

func TestScanAndNotifyStopsOnWebhookError(t *testing.T) {
	st := store.New(nil)
	st.AddItem(models.StockItem{Name: "Souris", CurrentStock: 0, MinStock: 10})

	wantErr := errors.New("webhook unreachable")
	_, err := NewService(st, &fakeWebhook{err: wantErr}, nil).ScanAndNotify(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}
