// Package seeddata carrega o conjunto fixo de registros usado para popular o banco do dashboard.
package seeddata

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxMonthLength acompanha a coluna revenue.month varchar(4)
const maxMonthLength = 4

// ErrInvalidDataset indica que o dataset embutido não respeita o schema das tabelas
var ErrInvalidDataset = errors.New("dataset de seed inválido")

//go:embed placeholder.json
var placeholder []byte

// Load decodifica e valida o dataset embutido
func Load() (*domain.Dataset, error) {
	return Parse(placeholder)
}

// Parse decodifica um dataset em JSON e valida seus registros
func Parse(raw []byte) (*domain.Dataset, error) {
	var dataset domain.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	if err := Validate(&dataset); err != nil {
		return nil, err
	}

	return &dataset, nil
}

// Validate verifica se cada registro pode ser gravado nas tabelas de destino
func Validate(dataset *domain.Dataset) error {
	for i, user := range dataset.Users {
		if err := validateID("users", i, user.ID); err != nil {
			return err
		}
		if strings.TrimSpace(user.Email) == "" {
			return invalid("users", i, "email vazio")
		}
		if user.Password == "" {
			return invalid("users", i, "senha vazia")
		}
	}

	for i, customer := range dataset.Customers {
		if err := validateID("customers", i, customer.ID); err != nil {
			return err
		}
		if strings.TrimSpace(customer.Email) == "" {
			return invalid("customers", i, "email vazio")
		}
	}

	for i, invoice := range dataset.Invoices {
		if err := validateID("invoices", i, invoice.ID); err != nil {
			return err
		}
		if _, err := uuid.Parse(invoice.CustomerID); err != nil {
			return invalid("invoices", i, fmt.Sprintf("customer_id %q não é um UUID", invoice.CustomerID))
		}
		if !invoice.Status.Valid() {
			return invalid("invoices", i, fmt.Sprintf("status %q desconhecido", invoice.Status))
		}
		if _, err := time.Parse(time.DateOnly, invoice.Date); err != nil {
			return invalid("invoices", i, fmt.Sprintf("data %q fora do formato AAAA-MM-DD", invoice.Date))
		}
	}

	months := make(map[string]struct{}, len(dataset.Revenue))
	for i, rev := range dataset.Revenue {
		if rev.Month == "" || len(rev.Month) > maxMonthLength {
			return invalid("revenue", i, fmt.Sprintf("mês %q deve ter entre 1 e %d caracteres", rev.Month, maxMonthLength))
		}
		if _, exists := months[rev.Month]; exists {
			return invalid("revenue", i, fmt.Sprintf("mês %q duplicado", rev.Month))
		}
		months[rev.Month] = struct{}{}
	}

	return nil
}

func validateID(entity string, index int, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalid(entity, index, fmt.Sprintf("id %q não é um UUID", id))
	}
	return nil
}

func invalid(entity string, index int, reason string) error {
	return fmt.Errorf("%w: %s[%d]: %s", ErrInvalidDataset, entity, index, reason)
}
