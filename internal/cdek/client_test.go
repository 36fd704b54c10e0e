package cdek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/cache"
	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/measure"
)

func testProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID: "car",
			Characteristics: []*domain.ProductCharacteristic{
				{Key: "Вес", Value: "1.5 кг"},
				{Key: "Габариты", Value: "30х20х10 см"},
				{Key: "Возраст", Value: "3+ лет"},
			},
		},
		{
			ID: "ball",
			Characteristics: []*domain.ProductCharacteristic{
				{Key: "Размер", Value: "10x40x5 см"},
			},
		},
	}
}

func testOrder(deliveryType domain.DeliveryType) *domain.Order {
	office := "MSK123"
	address := "Москва, ул. Тверская, 1"
	city := 44
	return &domain.Order{
		ID:              "order-1",
		Number:          "2024-0042",
		CustomerName:    "Анна",
		CustomerPhone:   "+79990000000",
		DeliveryType:    deliveryType,
		DeliveryAddress: &address,
		CdekCityCode:    &city,
		CdekOfficeCode:  &office,
		Items: []*domain.OrderItem{
			{ProductID: "car", ProductName: "Машинка", Quantity: 2, Price: decimal.NewFromInt(1000)},
			{ProductID: "ball", ProductName: "Мяч", Quantity: 1, Price: decimal.RequireFromString("250.50")},
		},
	}
}

func TestBuildPackage(t *testing.T) {
	order := testOrder(domain.DeliveryTypeDelivery)

	size := BuildPackage(measure.DefaultConfig, order.Items, testProducts())

	assert.Equal(t, 1500*2+500, size.WeightG)
	assert.Equal(t, 30, size.LengthCm)
	assert.Equal(t, 40, size.WidthCm)
	assert.Equal(t, 10, size.HeightCm)
	assert.Equal(t, map[string]int{"car": 1500, "ball": 500}, size.ItemG)
}

func TestBuildPackage_UnknownProductUsesDefaults(t *testing.T) {
	items := []*domain.OrderItem{{ProductID: "gone", Quantity: 3}}

	size := BuildPackage(measure.DefaultConfig, items, nil)

	assert.Equal(t, 1500, size.WeightG)
	assert.Equal(t, 35, size.LengthCm)
	assert.Equal(t, 35, size.WidthCm)
	assert.Equal(t, 35, size.HeightCm)
}

type fakeCDEK struct {
	server      *httptest.Server
	tokenCalls  atomic.Int32
	orderCalls  atomic.Int32
	rejectFirst atomic.Int32 // Сколько запросов заказа ответить 401

	mu        sync.Mutex
	lastOrder orderRequest
	lastAuth  string
}

func (f *fakeCDEK) last() (orderRequest, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOrder, f.lastAuth
}

func newFakeCDEK(t *testing.T) *fakeCDEK {
	f := &fakeCDEK{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

		n := f.tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{
			AccessToken: "token-" + string(rune('0'+n)),
			TokenType:   "bearer",
			ExpiresIn:   3600,
		})
	})
	mux.HandleFunc("/v2/orders", func(w http.ResponseWriter, r *http.Request) {
		f.orderCalls.Add(1)
		if f.rejectFirst.Load() > 0 {
			f.rejectFirst.Add(-1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var order orderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		f.mu.Lock()
		f.lastOrder, f.lastAuth = order, r.Header.Get("Authorization")
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"entity":{"uuid":"72753031-5e9a-4d56-b6a4-2d0d9e1cde94"},"requests":[{"state":"ACCEPTED"}]}`))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newTestClient(f *fakeCDEK, cfg Config) *Client {
	cfg.BaseURL = f.server.URL
	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"
	return NewClient(cfg, cache.NewMemoryTokenCache(), zap.NewNop())
}

func TestClient_BookShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Courier delivery", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{TariffCode: 137, SenderCityCode: 270})

		shipment, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
		require.NoError(t, err)
		assert.Equal(t, "72753031-5e9a-4d56-b6a4-2d0d9e1cde94", shipment.UUID)
		assert.Equal(t, 3500, shipment.WeightG)

		got, auth := f.last()
		assert.Equal(t, "Bearer token-1", auth)
		assert.Equal(t, orderTypeOnlineStore, got.Type)
		assert.Equal(t, "2024-0042", got.Number)
		assert.Equal(t, 137, got.TariffCode)
		require.NotNil(t, got.FromLocation)
		assert.Equal(t, 270, got.FromLocation.Code)
		require.NotNil(t, got.ToLocation)
		assert.Equal(t, 44, got.ToLocation.Code)
		assert.Equal(t, "Москва, ул. Тверская, 1", got.ToLocation.Address)
		assert.Empty(t, got.DeliveryPoint)
		assert.Equal(t, []phone{{Number: "+79990000000"}}, got.Recipient.Phones)

		require.Len(t, got.Packages, 1)
		pkg := got.Packages[0]
		assert.NotEmpty(t, pkg.Number)
		assert.Equal(t, 3500, pkg.Weight, "weight must be sent in grams")
		require.Len(t, pkg.Items, 2)
		assert.Equal(t, packageItem{Name: "Машинка", WareKey: "car", Cost: 1000, Weight: 1500, Amount: 2}, pkg.Items[0])
		assert.Equal(t, 250.5, pkg.Items[1].Cost)
	})

	t.Run("Office delivery from shipment point", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{TariffCode: 136, ShipmentPoint: "SPB7"})

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeCdekOffice), testProducts())
		require.NoError(t, err)

		got, _ := f.last()
		assert.Equal(t, "SPB7", got.ShipmentPoint)
		assert.Nil(t, got.FromLocation)
		assert.Equal(t, "MSK123", got.DeliveryPoint)
		assert.Nil(t, got.ToLocation)
	})

	t.Run("Pickup skipped", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{})

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypePickup), testProducts())
		assert.ErrorIs(t, err, ErrShipmentNotRequired)
		assert.Zero(t, f.tokenCalls.Load())
		assert.Zero(t, f.orderCalls.Load())
	})

	t.Run("Token reused from cache", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{})

		for i := 0; i < 3; i++ {
			_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
			require.NoError(t, err)
		}
		assert.EqualValues(t, 1, f.tokenCalls.Load())
		assert.EqualValues(t, 3, f.orderCalls.Load())
	})

	t.Run("Re-authenticates once on 401", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{})
		f.rejectFirst.Store(1)

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
		require.NoError(t, err)
		assert.EqualValues(t, 2, f.tokenCalls.Load())
		assert.EqualValues(t, 2, f.orderCalls.Load())
		got, auth := f.last()
		assert.Equal(t, "Bearer token-2", auth)
		require.Len(t, got.Packages, 1)
		assert.Equal(t, 3500, got.Packages[0].Weight, "replayed body must be complete")
	})

	t.Run("Gives up after second 401", func(t *testing.T) {
		f := newFakeCDEK(t)
		c := newTestClient(f, Config{})
		f.rejectFirst.Store(5)

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.EqualValues(t, 2, f.tokenCalls.Load())
		assert.EqualValues(t, 2, f.orderCalls.Load())
	})

	t.Run("Rejected by validation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v2/oauth/token" {
				_, _ = w.Write([]byte(`{"access_token":"t","expires_in":3600}`))
				return
			}
			_, _ = w.Write([]byte(`{"entity":{},"requests":[{"state":"INVALID","errors":[{"code":"v2_weight","message":"weight is invalid"}]}]}`))
		}))
		defer srv.Close()
		c := NewClient(Config{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"}, cache.NewMemoryTokenCache(), zap.NewNop())

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "v2_weight: weight is invalid")
	})

	t.Run("Not configured", func(t *testing.T) {
		c := NewClient(Config{}, cache.NewMemoryTokenCache(), zap.NewNop())

		_, err := c.BookShipment(ctx, testOrder(domain.DeliveryTypeDelivery), testProducts())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
