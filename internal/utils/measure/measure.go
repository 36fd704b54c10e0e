// Package measure извлекает вес и габариты товара из текстовых характеристик.
//
// Характеристики заполняются вручную ("Вес" -> "750 гр", "Размер" -> "25х20х10 см"),
// поэтому разбор эвристический: единица берется из значения, затем из ключа,
// числа без единицы трактуются по порогам из Config. Результат всегда в граммах
// и сантиметрах: перевозчик принимает вес только в граммах.
package measure

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit единица измерения, найденная в тексте
type Unit string

const (
	UnitNone       Unit = ""
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitMeter      Unit = "m"
)

// Attribute пара ключ-значение характеристики
type Attribute struct {
	Key   string
	Value string
}

// Measurement результат разбора
type Measurement struct {
	Value       int  // граммы для веса, сантиметры для габаритов
	Unit        Unit // единица исходного текста
	DefaultUsed bool // значение не найдено, подставлено значение по умолчанию
	Clamped     bool // значение вышло за допустимый диапазон и было ограничено
}

// Dimensions габариты в сантиметрах
type Dimensions struct {
	Length Measurement
	Width  Measurement
	Height Measurement
}

// Config пороги и значения по умолчанию
type Config struct {
	MinWeightG         int
	MaxWeightG         int
	DefaultWeightG     int
	MinDimensionCm     int
	MaxDimensionCm     int
	DefaultDimensionCm int
	// Число без единицы не больше этого порога считается килограммами ("Вес: 2")
	UnitlessKilogramLimit float64
}

// DefaultConfig значения, с которыми работает магазин
var DefaultConfig = Config{
	MinWeightG:            1,
	MaxWeightG:            100000,
	DefaultWeightG:        500,
	MinDimensionCm:        1,
	MaxDimensionCm:        150,
	DefaultDimensionCm:    35,
	UnitlessKilogramLimit: 30,
}

const number = `(\d+(?:[.,]\d+)?)`

var (
	weightValueRe = regexp.MustCompile(`(?i)` + number + `\s*(килограмм\p{L}*|кг|kg|грамм\p{L}*|гр|г|g)(?:[^\p{L}]|$)`)
	// Для неподписанных ключей однобуквенная единица допустима только через пробел: "4G" не вес
	looseWeightRe = regexp.MustCompile(`(?i)` + number + `(?:\s*(?:килограмм\p{L}*|кг|kg|грамм\p{L}*|гр)|\s+(?:г|g))(?:[^\p{L}]|$)`)
	numberRe      = regexp.MustCompile(number)
	kgTokenRe     = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(кг|kg|килограмм\p{L}*)(?:[^\p{L}]|$)`)
	gramTokenRe   = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(гр|г|g|грамм\p{L}*)(?:[^\p{L}]|$)`)
	lengthTokenRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(мм|mm|см|cm|м|m)(?:[^\p{L}]|$)`)
	dimsSplitRe   = regexp.MustCompile(`(?i)\s*[xх×*]\s*`)
)

var (
	weightKeys    = []string{"вес", "weight"}
	lengthKeys    = []string{"длина", "length", "глубина", "depth"}
	widthKeys     = []string{"ширина", "width"}
	heightKeys    = []string{"высота", "height"}
	dimensionKeys = []string{"габарит", "размер", "dimension", "size"}
	ignoredKeys   = []string{"возраст", "age"}
)

// Weight возвращает вес товара в граммах
func (c Config) Weight(attrs []Attribute) Measurement {
	for _, attr := range attrs {
		if !containsAny(attr.Key, weightKeys) {
			continue
		}
		if m, ok := c.parseWeight(attr.Key, attr.Value); ok {
			return m
		}
	}

	// Ключ не подписан, ищем значение с явной единицей веса
	for _, attr := range attrs {
		if containsAny(attr.Key, ignoredKeys) || containsAny(attr.Key, weightKeys) {
			continue
		}
		match := looseWeightRe.FindString(attr.Value)
		if match == "" {
			continue
		}
		if m, ok := c.parseWeight("", match); ok {
			return m
		}
	}

	return Measurement{Value: c.DefaultWeightG, Unit: UnitGram, DefaultUsed: true}
}

// ParseWeight разбирает одно значение веса
func (c Config) ParseWeight(key, value string) Measurement {
	if m, ok := c.parseWeight(key, value); ok {
		return m
	}
	return Measurement{Value: c.DefaultWeightG, Unit: UnitGram, DefaultUsed: true}
}

func (c Config) parseWeight(key, value string) (Measurement, bool) {
	var (
		amount float64
		unit   Unit
	)

	if match := weightValueRe.FindStringSubmatch(value); match != nil {
		v, ok := parseNumber(match[1])
		if !ok {
			return Measurement{}, false
		}
		amount = v
		unit = weightUnit(match[2])
	} else {
		match := numberRe.FindString(value)
		if match == "" {
			return Measurement{}, false
		}
		v, ok := parseNumber(match)
		if !ok {
			return Measurement{}, false
		}
		amount = v
		switch {
		case kgTokenRe.MatchString(key):
			unit = UnitKilogram
		case gramTokenRe.MatchString(key):
			unit = UnitGram
		case v <= c.UnitlessKilogramLimit:
			unit = UnitKilogram
		default:
			unit = UnitGram
		}
	}

	if amount <= 0 {
		return Measurement{}, false
	}

	grams := amount
	if unit == UnitKilogram {
		grams = amount * 1000
	}

	g, clamped := clamp(int(math.Round(grams)), c.MinWeightG, c.MaxWeightG)
	return Measurement{Value: g, Unit: unit, Clamped: clamped}, true
}

// Dimensions возвращает габариты товара в сантиметрах
func (c Config) Dimensions(attrs []Attribute) Dimensions {
	dims := Dimensions{
		Length: c.defaultDimension(),
		Width:  c.defaultDimension(),
		Height: c.defaultDimension(),
	}

	for _, attr := range attrs {
		if containsAny(attr.Key, ignoredKeys) {
			continue
		}
		switch {
		case containsAny(attr.Key, lengthKeys):
			if m, ok := c.parseLength(attr.Key, attr.Value); ok {
				dims.Length = m
			}
		case containsAny(attr.Key, widthKeys):
			if m, ok := c.parseLength(attr.Key, attr.Value); ok {
				dims.Width = m
			}
		case containsAny(attr.Key, heightKeys):
			if m, ok := c.parseLength(attr.Key, attr.Value); ok {
				dims.Height = m
			}
		case containsAny(attr.Key, dimensionKeys):
			parts := dimsSplitRe.Split(strings.TrimSpace(attr.Value), -1)
			if len(parts) > 3 {
				continue
			}
			// Единица обычно указана один раз в конце: "25x20x10 см".
			// Неполный размер заполняет оси по порядку: "25 см" это длина
			unit := lengthUnit(attr.Key, attr.Value)
			targets := []*Measurement{&dims.Length, &dims.Width, &dims.Height}
			for i, part := range parts {
				if m, ok := c.lengthWithUnit(part, unit); ok {
					*targets[i] = m
				}
			}
		}
	}

	return dims
}

// ParseLength разбирает одно значение длины
func (c Config) ParseLength(key, value string) Measurement {
	if m, ok := c.parseLength(key, value); ok {
		return m
	}
	return c.defaultDimension()
}

func (c Config) parseLength(key, value string) (Measurement, bool) {
	return c.lengthWithUnit(value, lengthUnit(key, value))
}

func (c Config) lengthWithUnit(value string, unit Unit) (Measurement, bool) {
	match := numberRe.FindString(value)
	if match == "" {
		return Measurement{}, false
	}
	amount, ok := parseNumber(match)
	if !ok || amount <= 0 {
		return Measurement{}, false
	}

	cm := amount
	switch unit {
	case UnitMillimeter:
		cm = amount / 10
	case UnitMeter:
		cm = amount * 100
	}

	v, clamped := clamp(int(math.Round(cm)), c.MinDimensionCm, c.MaxDimensionCm)
	return Measurement{Value: v, Unit: unit, Clamped: clamped}, true
}

func (c Config) defaultDimension() Measurement {
	return Measurement{Value: c.DefaultDimensionCm, Unit: UnitCentimeter, DefaultUsed: true}
}

func lengthUnit(key, value string) Unit {
	for _, text := range []string{value, key} {
		if match := lengthTokenRe.FindStringSubmatch(text); match != nil {
			switch strings.ToLower(match[1]) {
			case "мм", "mm":
				return UnitMillimeter
			case "м", "m":
				return UnitMeter
			default:
				return UnitCentimeter
			}
		}
	}
	return UnitCentimeter
}

func weightUnit(token string) Unit {
	token = strings.ToLower(token)
	if token == "кг" || token == "kg" || strings.HasPrefix(token, "килограмм") {
		return UnitKilogram
	}
	return UnitGram
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi int) (int, bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}

func containsAny(s string, needles []string) bool {
	s = strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
