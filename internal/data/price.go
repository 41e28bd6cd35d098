package data

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidPriceFormat = errors.New("invalid price format")

// Price is an integer amount that also unmarshals from a quoted,
// currency-prefixed string such as "$149".
type Price int64

func (p *Price) UnmarshalJSON(jsonValue []byte) error {
	if n, err := strconv.ParseInt(string(jsonValue), 10, 64); err == nil {
		*p = Price(n)
		return nil
	}

	unquotedJSONValue, err := strconv.Unquote(string(jsonValue))
	if err != nil {
		return ErrInvalidPriceFormat
	}

	price := unquotedJSONValue
	if r, _ := utf8.DecodeRuneInString(price); !unicode.IsDigit(r) {
		price = trimFirstRune(price)
	}

	n, err := strconv.ParseInt(price, 10, 64)
	if err != nil {
		return ErrInvalidPriceFormat
	}

	*p = Price(n)

	return nil
}

func trimFirstRune(s string) string {
	_, i := utf8.DecodeRuneInString(s)
	return s[i:]
}
