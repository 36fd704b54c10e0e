package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest запрос на оформление заказа
type CreateOrderRequest struct {
	CustomerName    string            `json:"customerName" validate:"required,max=200"`
	CustomerPhone   string            `json:"customerPhone" validate:"required,min=5,max=32"`
	CustomerEmail   *string           `json:"customerEmail,omitempty" validate:"omitempty,email"`
	DeliveryType    DeliveryType      `json:"deliveryType" validate:"required,oneof=pickup delivery cdek_office"`
	DeliveryAddress *string           `json:"deliveryAddress,omitempty" validate:"omitempty,max=500"`
	CdekCityCode    *int              `json:"cdekCityCode,omitempty" validate:"omitempty,min=1"`
	CdekOfficeCode  *string           `json:"cdekOfficeCode,omitempty" validate:"omitempty,max=64"`
	Comment         *string           `json:"comment,omitempty" validate:"omitempty,max=1000"`
	Items           []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
	PromoCode       *string           `json:"promoCode,omitempty" validate:"omitempty,max=64"`
}

// CreateOrderItem позиция запроса на оформление
type CreateOrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1,max=999"`
}

// PromoCodeRequest запрос на создание или изменение промокода
type PromoCodeRequest struct {
	Code           string           `json:"code" validate:"required,min=3,max=64"`
	Type           PromoCodeType    `json:"type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	Value          decimal.Decimal  `json:"value"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxUses        *int             `json:"maxUses,omitempty" validate:"omitempty,min=1"`
	ValidFrom      *time.Time       `json:"validFrom,omitempty"`
	ValidUntil     *time.Time       `json:"validUntil,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
}

// CreateProductRequest запрос на добавление товара
type CreateProductRequest struct {
	Name            string                  `json:"name" validate:"required,max=300"`
	Slug            string                  `json:"slug" validate:"required,max=300"`
	Price           decimal.Decimal         `json:"price"`
	OldPrice        *decimal.Decimal        `json:"oldPrice,omitempty"`
	DiscountPercent *int                    `json:"discountPercent,omitempty" validate:"omitempty,min=0,max=100"`
	Images          []string                `json:"images"`
	Breadcrumbs     []string                `json:"breadcrumbs"`
	Categories      []string                `json:"categories"`
	AgeGroups       []string                `json:"ageGroups"`
	InStock         *bool                   `json:"inStock,omitempty"`
	Characteristics []ProductCharacteristic `json:"characteristics" validate:"dive"`
}
