package domain

// Revenue é a receita consolidada de um mês (Jan, Feb, ...)
type Revenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}
