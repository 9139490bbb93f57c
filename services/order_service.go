package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/repository"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository

	// Legacy behavior trusts client totals and any status string;
	// the flags tighten both without changing the default.
	VerifyTotals bool
	StrictStatus bool
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, verifyTotals, strictStatus bool) *OrderService {
	return &OrderService{DB: db, Repo: repo, VerifyTotals: verifyTotals, StrictStatus: strictStatus}
}

// ----- DTOs from Controller -----

// OrderItemIn mirrors the client payload. MenuItemID is typed loosely
// because clients send it both as a number and as a numeric string.
type OrderItemIn struct {
	MenuItemID      any                     `json:"menu_item_id"`
	Name            string                  `json:"name"`
	Quantity        int                     `json:"quantity"`
	Price           float64                 `json:"price"`
	SelectedOptions []entity.SelectedOption `json:"selected_options"`
}

type CreateOrderReq struct {
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discount_amount"`
	Total          float64       `json:"total"`
	Items          []OrderItemIn `json:"items"`
}

func coerceMenuItemID(v any) (uint, error) {
	switch id := v.(type) {
	case float64:
		return uint(id), nil
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, ErrInvalidInput
		}
		return uint(n), nil
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, ErrInvalidInput
		}
		return uint(n), nil
	default:
		return 0, ErrInvalidInput
	}
}

// Place persists the order header and all line snapshots in a single
// transaction: everything becomes visible together or not at all.
func (s *OrderService) Place(user *entity.User, req *CreateOrderReq) (*entity.Order, error) {
	if user.Role == entity.RoleAdmin {
		return nil, ErrForbidden
	}

	if s.VerifyTotals {
		if err := s.verifyTotals(req); err != nil {
			return nil, err
		}
	}

	order := entity.Order{
		UserID:         user.ID,
		Date:           time.Now().UTC(),
		Status:         entity.StatusPending,
		Subtotal:       req.Subtotal,
		DiscountAmount: req.DiscountAmount,
		Total:          req.Total,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			menuID, err := coerceMenuItemID(it.MenuItemID)
			if err != nil {
				return err
			}
			oi := entity.OrderItem{
				OrderID:         order.ID,
				MenuItemID:      menuID,
				Name:            it.Name,
				Quantity:        it.Quantity,
				Price:           it.Price,
				SelectedOptions: it.SelectedOptions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.Items == nil {
		order.Items = []entity.OrderItem{}
	}
	return &order, nil
}

// verifyTotals recomputes the money figures from catalog prices and
// add-on deltas instead of trusting the client.
func (s *OrderService) verifyTotals(req *CreateOrderReq) error {
	const tolerance = 0.01

	var subtotal float64
	for _, it := range req.Items {
		menuID, err := coerceMenuItemID(it.MenuItemID)
		if err != nil {
			return err
		}
		m, err := s.Repo.GetMenuItem(menuID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidInput
			}
			return err
		}

		unit := m.Price
		for _, opt := range it.SelectedOptions {
			if opt.Type == entity.AddOnQuantity && opt.Quantity > 0 {
				unit += opt.Price * float64(opt.Quantity)
			} else {
				unit += opt.Price
			}
		}
		subtotal += unit * float64(it.Quantity)
	}

	total := subtotal - req.DiscountAmount
	if math.Abs(subtotal-req.Subtotal) > tolerance || math.Abs(total-req.Total) > tolerance {
		return ErrInvalidInput
	}
	return nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

// SetStatus overwrites an order's status. Unknown values pass through
// unless strict mode is on.
func (s *OrderService) SetStatus(orderID uint, status entity.OrderStatus) error {
	if s.StrictStatus && !status.Valid() {
		return ErrInvalidInput
	}

	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.UpdateStatus(orderID, status)
}
