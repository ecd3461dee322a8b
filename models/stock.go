package models

type Stock struct {
	StockID     int64   `json:"stockId" yaml:"stockId"`
	Ticker      string  `json:"ticker" yaml:"ticker"`
	CompanyName string  `json:"companyName" yaml:"companyName"`
	Price       float64 `json:"price" yaml:"price"`
}
