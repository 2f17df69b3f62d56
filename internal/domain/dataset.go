package domain

// Dataset agrupa os registros fixos usados para popular o banco
type Dataset struct {
	Users     []User     `json:"users"`
	Customers []Customer `json:"customers"`
	Invoices  []Invoice  `json:"invoices"`
	Revenue   []Revenue  `json:"revenue"`
}
