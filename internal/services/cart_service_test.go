package services_test

import (
	"context"
	"sync"
	"testing"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/internal/repositories"
	"dcreative-storefront/internal/services"
	"dcreative-storefront/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures events instead of talking to a broker.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []capturedMessage
}

type capturedMessage struct {
	Topic string
	Key   string
	Value interface{}
}

func (p *recordingPublisher) SendMessage(topic string, key string, value interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, capturedMessage{Topic: topic, Key: key, Value: value})
	return nil
}

func (p *recordingPublisher) captured() []capturedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]capturedMessage(nil), p.messages...)
}

func newCartService(t *testing.T) (*services.CartService, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	cartRepo := repositories.NewCartRepository(store)
	snapshotRepo := repositories.NewSnapshotRepository(store)
	return services.NewCartService(cartRepo, snapshotRepo, nil, "test.cart"), store
}

func cherryBlossom() models.LineItem {
	return models.LineItem{
		ID:       "cherryblossombouquet",
		Name:     "Cherry Blossom Bouquet",
		Price:    "₱350.00",
		Image:    "/images/cherry-blossom-bouquet.jpg",
		Quantity: 1,
	}
}

func TestAddMergesOnRepeat(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	outcome, cart, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeAdded, outcome)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	outcome, cart, err = svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeIncremented, outcome)

	// Merge law: same sequence length, quantity bumped by exactly one.
	require.Len(t, cart, 1)
	assert.Equal(t, "cherryblossombouquet", cart[0].ID)
	assert.Equal(t, "Cherry Blossom Bouquet", cart[0].Name)
	assert.Equal(t, "₱350.00", cart[0].Price)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestAddKeepsOriginalDisplayData(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	// Same id with refreshed display data: the original entry wins.
	stale := cherryBlossom()
	stale.Price = "₱999.00"
	stale.Image = "/images/new.jpg"

	_, cart, err := svc.Add(ctx, "s1", stale)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "₱350.00", cart[0].Price)
	assert.Equal(t, "/images/cherry-blossom-bouquet.jpg", cart[0].Image)
}

func TestAddForcesQuantityToOne(t *testing.T) {
	svc, _ := newCartService(t)

	item := cherryBlossom()
	item.Quantity = 7

	_, cart, err := svc.Add(context.Background(), "s1", item)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", models.LineItem{ID: "a", Name: "A", Price: "₱100.00"})
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "s1", models.LineItem{ID: "b", Name: "B", Price: "₱200.00"})
	require.NoError(t, err)
	_, cart, err := svc.Add(ctx, "s1", models.LineItem{ID: "a", Name: "A", Price: "₱100.00"})
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, "a", cart[0].ID)
	assert.Equal(t, "b", cart[1].ID)
}

func TestIncrementAndDecrement(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	cart, err := svc.Increment(ctx, "s1", "cherryblossombouquet")
	require.NoError(t, err)
	assert.Equal(t, 2, cart[0].Quantity)

	cart, err = svc.Decrement(ctx, "s1", "cherryblossombouquet")
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestDecrementFloorsAtOne(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	// At quantity 1 decrement is a no-op; removal is always explicit.
	for i := 0; i < 3; i++ {
		cart, err := svc.Decrement(ctx, "s1", "cherryblossombouquet")
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	}
}

func TestIncrementMissingIDIsNoop(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.Increment(ctx, "s1", "ghost")
	require.NoError(t, err)
	assert.Empty(t, cart)

	cart, err = svc.Decrement(ctx, "s1", "ghost")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestRemove(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "s1", models.LineItem{ID: "b", Name: "Blue Berry Blossom Bouquet", Price: "₱380.00"})
	require.NoError(t, err)

	name, cart, err := svc.Remove(ctx, "s1", "cherryblossombouquet")
	require.NoError(t, err)
	assert.Equal(t, "Cherry Blossom Bouquet", name)
	require.Len(t, cart, 1)
	assert.Equal(t, "b", cart[0].ID)

	// Absent id: length unchanged, empty name.
	name, cart, err = svc.Remove(ctx, "s1", "cherryblossombouquet")
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Len(t, cart, 1)
}

func TestClearThenReadAll(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	count, err := svc.ItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestItemsReadsMalformedDocumentAsEmpty(t *testing.T) {
	svc, store := newCartService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, models.CartKey+":s1", "{definitely not json"))

	cart, err := svc.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestItemsIsolatedPerSession(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	cart, err := svc.Items(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestBuyNowLeavesCartUntouched(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)

	snapshot, err := svc.BuyNow(ctx, "s1", models.LineItem{
		ID:    "emeraldserenitybouquet",
		Name:  "Emerald Serenity Bouquet",
		Price: "₱500.00",
	})
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Quantity)

	// The main cart is not read or mutated by buy-now.
	cart, err := svc.Items(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "cherryblossombouquet", cart[0].ID)

	stored, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, stored)
}

func TestBuyNowOverwritesPriorSnapshot(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, err := svc.BuyNow(ctx, "s1", models.LineItem{ID: "a", Name: "A", Price: "₱100.00"})
	require.NoError(t, err)
	_, err = svc.BuyNow(ctx, "s1", models.LineItem{ID: "b", Name: "B", Price: "₱200.00"})
	require.NoError(t, err)

	snapshot, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "b", snapshot[0].ID)
}

func TestCartEventsPublished(t *testing.T) {
	store := kvstore.NewMemoryStore()
	events := &recordingPublisher{}
	svc := services.NewCartService(
		repositories.NewCartRepository(store),
		repositories.NewSnapshotRepository(store),
		events,
		"test.cart",
	)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", cherryBlossom())
	require.NoError(t, err)
	_, _, err = svc.Remove(ctx, "s1", "cherryblossombouquet")
	require.NoError(t, err)

	messages := events.captured()
	require.Len(t, messages, 2)
	assert.Equal(t, "test.cart", messages[0].Topic)
	assert.Equal(t, "s1", messages[0].Key)
}
