package types

import "context"

// Car represents a catalog entry as returned by the sorted listing
type Car struct {
	id    string
	make  string
	model string
	year  int
	price float64
	image string
}

// NewCar creates a new Car with the given fields
func NewCar(id, make, model string, year int, price float64, image string) Car {
	return Car{
		id:    id,
		make:  make,
		model: model,
		year:  year,
		price: price,
		image: image,
	}
}

// Getters for Car fields
func (c Car) ID() string     { return c.id }
func (c Car) Make() string   { return c.make }
func (c Car) Model() string  { return c.model }
func (c Car) Year() int      { return c.year }
func (c Car) Price() float64 { return c.price }
func (c Car) Image() string  { return c.image }

// Title returns "Make Model" as shown on cards and headings
func (c Car) Title() string { return c.make + " " + c.model }

// CarDetail extends Car with the fields of the per-car endpoint
type CarDetail struct {
	car          Car
	mileage      int
	condition    string
	fuelType     string
	transmission string
	color        string
	vin          string
	description  string
}

// NewCarDetail creates a new CarDetail
func NewCarDetail(car Car, mileage int, condition, fuelType, transmission, color, vin, description string) CarDetail {
	return CarDetail{
		car:          car,
		mileage:      mileage,
		condition:    condition,
		fuelType:     fuelType,
		transmission: transmission,
		color:        color,
		vin:          vin,
		description:  description,
	}
}

// Getters for CarDetail fields
func (cd CarDetail) Car() Car             { return cd.car }
func (cd CarDetail) Mileage() int         { return cd.mileage }
func (cd CarDetail) Condition() string    { return cd.condition }
func (cd CarDetail) FuelType() string     { return cd.fuelType }
func (cd CarDetail) Transmission() string { return cd.transmission }
func (cd CarDetail) Color() string        { return cd.color }
func (cd CarDetail) VIN() string          { return cd.vin }
func (cd CarDetail) Description() string  { return cd.description }

// CarSource is the core abstraction for data access.
// No bubbletea dependency; the TUI and the MCP server both call it.
type CarSource interface {
	GetCatalog(ctx context.Context) ([]Car, error)
	GetCarDetail(ctx context.Context, id string) (CarDetail, error)
}
