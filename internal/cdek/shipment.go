package cdek

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/measure"
)

// ErrShipmentNotRequired заказ забирают самовывозом
var ErrShipmentNotRequired = errors.New("cdek: order does not require shipment")

// orderTypeOnlineStore тип заказа "интернет-магазин"
const orderTypeOnlineStore = 1

// requestStateInvalid запрос отклонен валидацией СДЭК
const requestStateInvalid = "INVALID"

type location struct {
	Code    int    `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
}

type phone struct {
	Number string `json:"number"`
}

type recipient struct {
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Phones []phone `json:"phones"`
}

type money struct {
	Value float64 `json:"value"`
}

type packageItem struct {
	Name    string  `json:"name"`
	WareKey string  `json:"ware_key"`
	Payment money   `json:"payment"`
	Cost    float64 `json:"cost"`
	Weight  int     `json:"weight"`
	Amount  int     `json:"amount"`
}

type orderPackage struct {
	Number string        `json:"number"`
	Weight int           `json:"weight"`
	Length int           `json:"length"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Items  []packageItem `json:"items"`
}

type orderRequest struct {
	Type          int            `json:"type"`
	Number        string         `json:"number"`
	TariffCode    int            `json:"tariff_code"`
	Comment       string         `json:"comment,omitempty"`
	ShipmentPoint string         `json:"shipment_point,omitempty"`
	DeliveryPoint string         `json:"delivery_point,omitempty"`
	FromLocation  *location      `json:"from_location,omitempty"`
	ToLocation    *location      `json:"to_location,omitempty"`
	Recipient     recipient      `json:"recipient"`
	Packages      []orderPackage `json:"packages"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	Entity struct {
		UUID string `json:"uuid"`
	} `json:"entity"`
	Requests []struct {
		State  string     `json:"state"`
		Errors []apiError `json:"errors"`
	} `json:"requests"`
}

// PackageSize параметры единственного места отправления
type PackageSize struct {
	WeightG  int
	LengthCm int
	WidthCm  int
	HeightCm int
	ItemG    map[string]int // Вес единицы товара по product id
}

func attributes(p *domain.Product) []measure.Attribute {
	if p == nil {
		return nil
	}
	attrs := make([]measure.Attribute, 0, len(p.Characteristics))
	for _, c := range p.Characteristics {
		attrs = append(attrs, measure.Attribute{Key: c.Key, Value: c.Value})
	}
	return attrs
}

// BuildPackage считает одно место: вес суммируется по позициям с учетом количества,
// габариты берутся максимальные по каждой оси
func BuildPackage(cfg measure.Config, items []*domain.OrderItem, products []*domain.Product) PackageSize {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	size := PackageSize{ItemG: make(map[string]int, len(items))}
	for _, item := range items {
		attrs := attributes(byID[item.ProductID])

		weight := cfg.Weight(attrs).Value
		size.ItemG[item.ProductID] = weight
		size.WeightG += weight * item.Quantity

		dims := cfg.Dimensions(attrs)
		size.LengthCm = max(size.LengthCm, dims.Length.Value)
		size.WidthCm = max(size.WidthCm, dims.Width.Value)
		size.HeightCm = max(size.HeightCm, dims.Height.Value)
	}

	if len(items) == 0 {
		size.WeightG = cfg.DefaultWeightG
		size.LengthCm = cfg.DefaultDimensionCm
		size.WidthCm = cfg.DefaultDimensionCm
		size.HeightCm = cfg.DefaultDimensionCm
	}

	return size
}

func (c *Client) buildOrderRequest(order *domain.Order, size PackageSize) *orderRequest {
	req := &orderRequest{
		Type:       orderTypeOnlineStore,
		Number:     order.Number,
		TariffCode: c.cfg.TariffCode,
		Recipient: recipient{
			Name:   order.CustomerName,
			Phones: []phone{{Number: order.CustomerPhone}},
		},
	}
	if order.CustomerEmail != nil {
		req.Recipient.Email = *order.CustomerEmail
	}
	if order.Comment != nil {
		req.Comment = *order.Comment
	}

	if c.cfg.ShipmentPoint != "" {
		req.ShipmentPoint = c.cfg.ShipmentPoint
	} else {
		req.FromLocation = &location{Code: c.cfg.SenderCityCode}
	}

	switch order.DeliveryType {
	case domain.DeliveryTypeCdekOffice:
		if order.CdekOfficeCode != nil {
			req.DeliveryPoint = *order.CdekOfficeCode
		}
	case domain.DeliveryTypeDelivery:
		to := &location{}
		if order.CdekCityCode != nil {
			to.Code = *order.CdekCityCode
		}
		if order.DeliveryAddress != nil {
			to.Address = *order.DeliveryAddress
		}
		req.ToLocation = to
	}

	pkg := orderPackage{
		Number: uuid.NewString(),
		Weight: size.WeightG,
		Length: size.LengthCm,
		Width:  size.WidthCm,
		Height: size.HeightCm,
		Items:  make([]packageItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		pkg.Items = append(pkg.Items, packageItem{
			Name:    item.ProductName,
			WareKey: item.ProductID,
			Cost:    item.Price.InexactFloat64(),
			Weight:  size.ItemG[item.ProductID],
			Amount:  item.Quantity,
		})
	}
	req.Packages = []orderPackage{pkg}

	return req
}

// BookShipment регистрирует заказ в СДЭК и возвращает uuid отправления
func (c *Client) BookShipment(ctx context.Context, order *domain.Order, products []*domain.Product) (*domain.Shipment, error) {
	if !order.DeliveryType.RequiresShipment() {
		return nil, ErrShipmentNotRequired
	}

	size := BuildPackage(c.measure, order.Items, products)
	req := c.buildOrderRequest(order, size)

	var resp orderResponse
	if _, err := c.do(ctx, http.MethodPost, "/v2/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("cdek client: failed to book order %q: %w", order.ID, err)
	}

	var messages []string
	for _, r := range resp.Requests {
		if r.State != requestStateInvalid {
			continue
		}
		for _, e := range r.Errors {
			messages = append(messages, e.Code+": "+e.Message)
		}
	}
	if len(messages) > 0 {
		return nil, fmt.Errorf("cdek client: order %q rejected: %s", order.ID, strings.Join(messages, "; "))
	}
	if resp.Entity.UUID == "" {
		return nil, fmt.Errorf("cdek client: order %q: empty entity uuid", order.ID)
	}

	c.logger.Info("cdek shipment booked",
		zap.String("order_id", order.ID),
		zap.String("cdek_uuid", resp.Entity.UUID),
		zap.Int("weight_g", size.WeightG),
	)

	return &domain.Shipment{
		UUID:     resp.Entity.UUID,
		WeightG:  size.WeightG,
		LengthCm: size.LengthCm,
		WidthCm:  size.WidthCm,
		HeightCm: size.HeightCm,
	}, nil
}
