// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row and its line item rows are always written and read together.
package orderrepo

import (
	"time"

	"tastyfood/internal/adapters/out/postgres/menurepo"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The driver name columns are a snapshot taken when the driver was assigned.
type OrderDTO struct {
	OrderNo         string `gorm:"column:order_no;primaryKey"`
	RewardsNo       *int
	SubtotalCents   int64
	TipCents        int64
	TotalCents      int64
	OrderedAt       time.Time
	DeliveredAt     *time.Time
	DeliveryStatus  string
	DeliveryETA     *int `gorm:"column:delivery_eta"`
	DriverID        *int
	DriverFirstName *string
	DriverLastName  *string
	AddressID       *int
	PaymentID       *int
	Items           []LineItemDTO `gorm:"foreignKey:OrderNo;references:OrderNo"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one row of order_line_items. MenuItem is only populated on reads.
type LineItemDTO struct {
	ID         int `gorm:"column:line_item_id;primaryKey"`
	OrderNo    string
	MenuItemID int
	ItemCount  int
	MenuItem   *menurepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;references:ID"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate with its line items to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		OrderNo:        o.Number().String(),
		RewardsNo:      o.RewardsNo(),
		SubtotalCents:  o.Subtotal().Cents(),
		TipCents:       o.Tip().Cents(),
		TotalCents:     o.Total().Cents(),
		OrderedAt:      o.OrderedAt(),
		DeliveredAt:    o.DeliveredAt(),
		DeliveryStatus: o.Status().String(),
		DeliveryETA:    o.DeliveryETA(),
		AddressID:      o.AddressID(),
		PaymentID:      o.PaymentID(),
	}

	if d := o.Driver(); d != nil {
		id, first, last := d.ID, d.FirstName, d.LastName
		dto.DriverID = &id
		dto.DriverFirstName = &first
		dto.DriverLastName = &last
	}

	items := o.LineItems()
	dto.Items = make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		dto.Items = append(dto.Items, LineItemDTO{
			OrderNo:    dto.OrderNo,
			MenuItemID: li.MenuItemID(),
			ItemCount:  li.Quantity(),
		})
	}

	return dto
}

// mutableColumns holds everything an order update may change. Line items and
// amounts are fixed at creation.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"delivery_status":   dto.DeliveryStatus,
		"delivered_at":      dto.DeliveredAt,
		"delivery_eta":      dto.DeliveryETA,
		"driver_id":         dto.DriverID,
		"driver_first_name": dto.DriverFirstName,
		"driver_last_name":  dto.DriverLastName,
	}
}

// toDomain rebuilds the order aggregate. A stored order number that the allocator
// could not have produced surfaces as an IdentifierFormatError.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.ParseOrderNumber(dto.OrderNo)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoney(dto.TipCents)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	var snapshot *driver.Snapshot
	if dto.DriverID != nil {
		snapshot = &driver.Snapshot{
			ID:        *dto.DriverID,
			FirstName: deref(dto.DriverFirstName),
			LastName:  deref(dto.DriverLastName),
		}
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, li := range dto.Items {
		if li.MenuItem == nil {
			continue
		}
		item, itemErr := menurepo.ToDomain(*li.MenuItem)
		if itemErr != nil {
			return nil, itemErr
		}
		restored, restoreErr := order.RestoreLineItem(li.ID, number, item, li.ItemCount)
		if restoreErr != nil {
			return nil, restoreErr
		}
		items = append(items, restored)
	}

	return order.RestoreOrder(order.State{
		Number:      number,
		Subtotal:    subtotal,
		Tip:         tip,
		Total:       total,
		OrderedAt:   dto.OrderedAt,
		DeliveredAt: dto.DeliveredAt,
		Status:      status,
		DeliveryETA: dto.DeliveryETA,
		Driver:      snapshot,
		AddressID:   dto.AddressID,
		PaymentID:   dto.PaymentID,
		RewardsNo:   dto.RewardsNo,
		Items:       items,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
