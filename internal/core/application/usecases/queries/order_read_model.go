// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the tables with SQL and return read models shaped
// for the API rather than aggregates.
package queries

import (
	"context"
	"time"

	"tastyfood/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// OrderResponse is the read model of an order with its line items.
type OrderResponse struct {
	OrderNo     string
	RewardsNo   *int
	Subtotal    kernel.Money
	Tip         kernel.Money
	Total       kernel.Money
	OrderedAt   time.Time
	DeliveredAt *time.Time
	Status      string
	DeliveryETA *int
	// Driver holds the name snapshot taken at assignment, nil when unassigned.
	Driver    *DriverRef
	AddressID *int
	PaymentID *int
	Items     []LineItemResponse
}

// DriverRef identifies the driver assigned to an order.
type DriverRef struct {
	ID        int
	FirstName string
	LastName  string
}

// LineItemResponse is one line of an order joined with its menu item.
type LineItemResponse struct {
	LineItemID int
	MenuItemID int
	Name       string
	Category   string
	UnitPrice  kernel.Money
	Quantity   int
	Amount     kernel.Money
}

type orderRow struct {
	OrderNo         string
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
}

type lineRow struct {
	LineItemID int
	OrderNo    string
	MenuItemID int
	ItemName   string
	Category   string
	PriceCents int64
	ItemCount  int
}

const selectOrders = `
	SELECT
		order_no,
		rewards_no,
		subtotal_cents,
		tip_cents,
		total_cents,
		ordered_at,
		delivered_at,
		delivery_status,
		delivery_eta,
		driver_id,
		driver_first_name,
		driver_last_name,
		address_id,
		payment_id
	FROM orders
`

// loadOrders runs the order select with the given filter and attaches line items
// with a second query. Results keep the order of the filter's ORDER BY.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderResponse, error) {
	var rows []orderRow
	if err := db.WithContext(ctx).Raw(selectOrders+filter, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	numbers := make([]string, 0, len(rows))
	for _, r := range rows {
		numbers = append(numbers, r.OrderNo)
	}

	var lines []lineRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			li.line_item_id,
			li.order_no,
			li.menu_item_id,
			m.item_name,
			m.category,
			m.price_cents,
			li.item_count
		FROM order_line_items li
		JOIN menu_items m ON m.item_id = li.menu_item_id
		WHERE li.order_no IN ?
		ORDER BY li.order_no, li.line_item_id
	`, numbers).Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]LineItemResponse, len(rows))
	for _, l := range lines {
		item, lineErr := toLineItemResponse(l)
		if lineErr != nil {
			return nil, lineErr
		}
		itemsByOrder[l.OrderNo] = append(itemsByOrder[l.OrderNo], item)
	}

	for _, r := range rows {
		resp, rowErr := toOrderResponse(r)
		if rowErr != nil {
			return nil, rowErr
		}
		resp.Items = itemsByOrder[r.OrderNo]
		if resp.Items == nil {
			resp.Items = make([]LineItemResponse, 0)
		}
		orders = append(orders, resp)
	}

	return orders, nil
}

func toOrderResponse(r orderRow) (OrderResponse, error) {
	subtotal, err := kernel.NewMoney(r.SubtotalCents)
	if err != nil {
		return OrderResponse{}, err
	}
	tip, err := kernel.NewMoney(r.TipCents)
	if err != nil {
		return OrderResponse{}, err
	}
	total, err := kernel.NewMoney(r.TotalCents)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		OrderNo:     r.OrderNo,
		RewardsNo:   r.RewardsNo,
		Subtotal:    subtotal,
		Tip:         tip,
		Total:       total,
		OrderedAt:   r.OrderedAt,
		DeliveredAt: r.DeliveredAt,
		Status:      r.DeliveryStatus,
		DeliveryETA: r.DeliveryETA,
		AddressID:   r.AddressID,
		PaymentID:   r.PaymentID,
	}
	if r.DriverID != nil {
		resp.Driver = &DriverRef{ID: *r.DriverID}
		if r.DriverFirstName != nil {
			resp.Driver.FirstName = *r.DriverFirstName
		}
		if r.DriverLastName != nil {
			resp.Driver.LastName = *r.DriverLastName
		}
	}
	return resp, nil
}

func toLineItemResponse(l lineRow) (LineItemResponse, error) {
	price, err := kernel.NewMoney(l.PriceCents)
	if err != nil {
		return LineItemResponse{}, err
	}
	amount, err := price.Multiply(l.ItemCount)
	if err != nil {
		return LineItemResponse{}, err
	}
	return LineItemResponse{
		LineItemID: l.LineItemID,
		MenuItemID: l.MenuItemID,
		Name:       l.ItemName,
		Category:   l.Category,
		UnitPrice:  price,
		Quantity:   l.ItemCount,
		Amount:     amount,
	}, nil
}
