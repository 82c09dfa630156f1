package domain

// Price は最小通貨単位で表現された金額です
type Price struct {
	value int64
}

func NewPrice(value int64) (Price, error) {
	if value < 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: value}, nil
}

func (p Price) Int64() int64 {
	return p.value
}

func (p Price) IsZero() bool {
	return p.value == 0
}
