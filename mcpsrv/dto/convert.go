package dto

import (
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/types"
)

func FromCar(c types.Car) Car {
	return Car{
		ID:           c.ID(),
		Make:         c.Make(),
		Model:        c.Model(),
		Year:         c.Year(),
		Price:        c.Price(),
		PriceDisplay: catalog.FormatPrice(c.Price()),
		Image:        c.Image(),
	}
}

func FromCars(cars []types.Car) []Car {
	out := make([]Car, 0, len(cars))
	for _, c := range cars {
		out = append(out, FromCar(c))
	}
	return out
}

func FromCarDetail(d types.CarDetail) CarDetail {
	return CarDetail{
		Car:          FromCar(d.Car()),
		Mileage:      d.Mileage(),
		Condition:    d.Condition(),
		FuelType:     d.FuelType(),
		Transmission: d.Transmission(),
		Color:        d.Color(),
		VIN:          d.VIN(),
		Description:  d.Description(),
	}
}
