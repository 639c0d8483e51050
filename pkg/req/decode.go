package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode читает JSON-тело запроса в T. Пустое тело даёт нулевое значение T
func Decode[T any](body io.Reader) (T, error) {
	var v T
	if body == nil {
		return v, nil
	}

	if err := json.NewDecoder(body).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return v, err
	}
	return v, nil
}
