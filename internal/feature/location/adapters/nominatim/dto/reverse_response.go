package dto

// ReverseResponse mirrors the fields of a Nominatim /reverse answer
// this client reads.
type ReverseResponse struct {
	Error   string  `json:"error"`
	Address Address `json:"address"`
}

// Address holds the administrative levels used to pick a place name.
type Address struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
}
