// Package signature реализует подпись запросов платежного шлюза Модульбанка.
//
// Алгоритм зафиксирован протоколом шлюза:
//  1. берутся все поля, кроме signature, пустые значения отбрасываются;
//  2. ключи сортируются лексикографически;
//  3. пары склеиваются как key=base64(value) через '&';
//  4. inner = sha1(secret + строка), signature = sha1(secret + inner), hex в нижнем регистре.
package signature

import (
	"crypto/sha1" //nolint:gosec // SHA1 задан протоколом шлюза
	"encoding/base64"
	"encoding/hex"
	"sort"
	"strings"
)

// FieldName имя поля подписи в запросах и уведомлениях
const FieldName = "signature"

// Canonical возвращает строку, которая подписывается
func Canonical(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if key == FieldName || value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+base64.StdEncoding.EncodeToString([]byte(fields[key])))
	}

	return strings.Join(pairs, "&")
}

// Sign вычисляет подпись набора полей
func Sign(fields map[string]string, secretKey string) string {
	inner := sha1Hex(secretKey + Canonical(fields))
	return sha1Hex(secretKey + inner)
}

// Verify сравнивает полученную подпись с пересчитанной без учета регистра
func Verify(fields map[string]string, received, secretKey string) bool {
	if received == "" {
		return false
	}
	return strings.EqualFold(Sign(fields, secretKey), strings.TrimSpace(received))
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec // SHA1 задан протоколом шлюза
	return hex.EncodeToString(sum[:])
}
