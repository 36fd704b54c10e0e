package modulbank

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/signature"
)

// maxCallbackBody ограничение размера тела уведомления
const maxCallbackBody = 1 << 20

// ParseCallback разбирает уведомление шлюза из form-data или JSON.
// Идентификатор заказа из пути имеет приоритет над полем order_id
func ParseCallback(r *http.Request, pathOrderID string) (*domain.PaymentCallback, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxCallbackBody)

	fields, err := callbackFields(r)
	if err != nil {
		return nil, err
	}

	orderID := pathOrderID
	if orderID == "" {
		orderID = fields["order_id"]
	}

	return &domain.PaymentCallback{
		State:         fields["state"],
		OrderID:       orderID,
		Amount:        fields["amount"],
		TransactionID: fields["transaction_id"],
		Signature:     fields[signature.FieldName],
		Fields:        fields,
	}, nil
}

func callbackFields(r *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var raw map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid JSON body: %v", err))
		}

		fields := make(map[string]string, len(raw))
		for key, value := range raw {
			fields[key] = stringify(value)
		}
		return fields, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxCallbackBody); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid form body: %v", err))
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid form body: %v", err))
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSpace(string(b))
	}
}
