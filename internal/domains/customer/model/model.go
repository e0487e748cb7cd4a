package model

import (
	"roombook/shared/model"
)

const (
	EntityName = "customer"

	FieldName = "customerName"
)

// Customer is a directory entry. The name is the whole identity: there
// is no separate customer id, and names are matched exactly, without
// case normalization.
type Customer struct {
	Name string
	model.Metadata
}
