package dealer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/qyinm/cartui/types"
)

// carID accepts either a JSON number or a JSON string.
type carID string

func (id *carID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = carID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("car id: %w", err)
	}
	*id = carID(n.String())
	return nil
}

type carJSON struct {
	ID    carID   `json:"id"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  int     `json:"year"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type carDetailJSON struct {
	carJSON
	Mileage      json.Number `json:"mileage"`
	Condition    string      `json:"condition"`
	FuelType     string      `json:"fuel_type"`
	Transmission string      `json:"transmission"`
	Color        string      `json:"color"`
	VIN          string      `json:"vin"`
	Description  string      `json:"description"`
}

func (c carJSON) toCar() types.Car {
	return types.NewCar(string(c.ID), c.Make, c.Model, c.Year, c.Price, c.Image)
}

// ParseCatalog decodes the sorted listing payload. Order is kept verbatim.
func ParseCatalog(data []byte) ([]types.Car, error) {
	var raw []carJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cars := make([]types.Car, 0, len(raw))
	for _, c := range raw {
		cars = append(cars, c.toCar())
	}
	return cars, nil
}

// ParseCarDetail decodes the per-car payload.
func ParseCarDetail(data []byte) (types.CarDetail, error) {
	var raw carDetailJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.CarDetail{}, err
	}

	return types.NewCarDetail(
		raw.toCar(),
		parseMileage(raw.Mileage),
		raw.Condition,
		raw.FuelType,
		raw.Transmission,
		raw.Color,
		raw.VIN,
		raw.Description,
	), nil
}

// parseMileage truncates fractional mileage. Returns 0 when absent.
func parseMileage(n json.Number) int {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0
	}
	return int(f)
}
