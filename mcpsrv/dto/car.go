package dto

type Car struct {
	ID           string  `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Image        string  `json:"image"`
}

type CarDetail struct {
	Car
	Mileage      int    `json:"mileage"`
	Condition    string `json:"condition"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
	Color        string `json:"color"`
	VIN          string `json:"vin"`
	Description  string `json:"description"`
}
