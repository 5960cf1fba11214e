package http

import (
	"time"

	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/staff"
)

// dateLayout is the wire format of hire dates.
const dateLayout = "2006-01-02"

// Request bodies.

type LineItemInput struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type NewOrder struct {
	Items       []LineItemInput `json:"items"`
	Subtotal    *string         `json:"subtotal,omitempty"`
	Tip         *string         `json:"tip,omitempty"`
	Total       *string         `json:"total,omitempty"`
	OrderedAt   *time.Time      `json:"orderedAt,omitempty"`
	Status      *string         `json:"status,omitempty"`
	DeliveryETA *int            `json:"deliveryEta,omitempty"`
	AddressID   *int            `json:"addressId,omitempty"`
	PaymentID   *int            `json:"paymentId,omitempty"`
	RewardsNo   *int            `json:"rewardsNo,omitempty"`
}

type OrderUpdate struct {
	Status      *string `json:"status,omitempty"`
	DriverID    *int    `json:"driverId,omitempty"`
	DeliveryETA *int    `json:"deliveryEta,omitempty"`
}

// DriverAssignment clears the assignment when DriverID is null or absent.
type DriverAssignment struct {
	DriverID *int `json:"driverId"`
}

type NewStaff struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Status    string  `json:"status,omitempty"`
	HiredDate *string `json:"hiredDate,omitempty"`
}

type StaffUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Status    *string `json:"status,omitempty"`
	HiredDate *string `json:"hiredDate,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Response bodies. Money is rendered as a decimal string.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type OrderDriver struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LineItem struct {
	LineItemID int    `json:"lineItemId"`
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Amount     string `json:"amount"`
}

type Order struct {
	OrderNo     string       `json:"orderNo"`
	RewardsNo   *int         `json:"rewardsNo,omitempty"`
	Subtotal    string       `json:"subtotal"`
	Tip         string       `json:"tip"`
	Total       string       `json:"total"`
	OrderedAt   time.Time    `json:"orderedAt"`
	DeliveredAt *time.Time   `json:"deliveredAt,omitempty"`
	Status      string       `json:"status"`
	DeliveryETA *int         `json:"deliveryEta,omitempty"`
	Driver      *OrderDriver `json:"driver,omitempty"`
	AddressID   *int         `json:"addressId,omitempty"`
	PaymentID   *int         `json:"paymentId,omitempty"`
	Items       []LineItem   `json:"items"`
}

type Staff struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Status    string  `json:"status"`
	HiredDate *string `json:"hiredDate,omitempty"`
}

type MenuItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
}

type Driver struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Employed  bool    `json:"employed"`
	Available bool    `json:"available"`
	Status    string  `json:"status"`
	HiredDate *string `json:"hiredDate,omitempty"`
}

type LoginResult struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	FirstLogin bool   `json:"firstLogin"`
	Status     string `json:"status,omitempty"`
}

func orderFromDomain(o *order.Order) Order {
	resp := Order{
		OrderNo:     o.Number().String(),
		RewardsNo:   o.RewardsNo(),
		Subtotal:    o.Subtotal().String(),
		Tip:         o.Tip().String(),
		Total:       o.Total().String(),
		OrderedAt:   o.OrderedAt(),
		DeliveredAt: o.DeliveredAt(),
		Status:      o.Status().String(),
		DeliveryETA: o.DeliveryETA(),
		AddressID:   o.AddressID(),
		PaymentID:   o.PaymentID(),
		Items:       make([]LineItem, 0, len(o.LineItems())),
	}
	if d := o.Driver(); d != nil {
		resp.Driver = &OrderDriver{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
	}
	for _, li := range o.LineItems() {
		item := li.MenuItem()
		resp.Items = append(resp.Items, LineItem{
			LineItemID: li.ID(),
			MenuItemID: item.ID(),
			Name:       item.Name(),
			Category:   item.Category(),
			UnitPrice:  item.Price().String(),
			Quantity:   li.Quantity(),
			Amount:     li.Amount().String(),
		})
	}
	return resp
}

func orderFromReadModel(r queries.OrderResponse) Order {
	resp := Order{
		OrderNo:     r.OrderNo,
		RewardsNo:   r.RewardsNo,
		Subtotal:    r.Subtotal.String(),
		Tip:         r.Tip.String(),
		Total:       r.Total.String(),
		OrderedAt:   r.OrderedAt,
		DeliveredAt: r.DeliveredAt,
		Status:      r.Status,
		DeliveryETA: r.DeliveryETA,
		AddressID:   r.AddressID,
		PaymentID:   r.PaymentID,
		Items:       make([]LineItem, 0, len(r.Items)),
	}
	if r.Driver != nil {
		resp.Driver = &OrderDriver{ID: r.Driver.ID, FirstName: r.Driver.FirstName, LastName: r.Driver.LastName}
	}
	for _, li := range r.Items {
		resp.Items = append(resp.Items, LineItem{
			LineItemID: li.LineItemID,
			MenuItemID: li.MenuItemID,
			Name:       li.Name,
			Category:   li.Category,
			UnitPrice:  li.UnitPrice.String(),
			Quantity:   li.Quantity,
			Amount:     li.Amount.String(),
		})
	}
	return resp
}

func ordersFromReadModel(rs []queries.OrderResponse) []Order {
	out := make([]Order, len(rs))
	for i, r := range rs {
		out[i] = orderFromReadModel(r)
	}
	return out
}

func staffFromDomain(s *staff.Staff) Staff {
	return Staff{
		ID:        s.ID(),
		FirstName: s.FirstName(),
		LastName:  s.LastName(),
		Email:     s.Email(),
		Username:  s.Username().String(),
		Status:    s.Status().String(),
		HiredDate: formatDate(s.HiredAt()),
	}
}

func staffFromReadModel(r queries.StaffResponse) Staff {
	return Staff{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Username:  r.Username,
		Status:    r.Status,
		HiredDate: formatDate(r.HiredDate),
	}
}

func menuItemFromReadModel(r queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Price:        r.Price.String(),
		Availability: r.Availability,
	}
}

func driverFromReadModel(r queries.DriverResponse) Driver {
	return Driver{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Employed:  r.Employed,
		Available: r.Available,
		Status:    r.Status,
		HiredDate: formatDate(r.HiredDate),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
