package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/datatypes"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/notify"
	"restaurant/internal/repository"
	"restaurant/internal/statemachine"
)

// OrderService turns carts into orders and manages their lifecycle.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.OrderDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repos     *repository.Repositories
	clearCart bool
	notifier  notify.Notifier
}

// NewOrderService creates a new order service. When clearCart is set the user's cart is emptied
// in the same transaction that creates the order.
func NewOrderService(repos *repository.Repositories, clearCart bool, notifier notify.Notifier) OrderService {
	return &orderService{repos: repos, clearCart: clearCart, notifier: notifier}
}

// PlaceOrder prices the user's cart against current menu prices and stores it as a Pending order.
// Any missing or unpriced item fails the whole order.
func (s *orderService) PlaceOrder(ctx context.Context, userID string) (*model.Order, error) {
	var (
		order *model.Order
		user  *model.User
	)

	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		u, err := tx.Users.FindBySlugID(ctx, userID)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound)
		}

		entries, err := tx.Carts.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(entries) == 0 {
			return apperrors.ErrCartEmpty
		}

		ids := make([]string, 0, len(entries))
		for _, entry := range entries {
			ids = append(ids, entry.MenuItemID)
		}
		items, err := tx.Menu.FindBySlugIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("load menu items: %w", err)
		}
		prices := make(map[string]model.MenuItem, len(items))
		for _, item := range items {
			prices[item.SlugID] = item
		}

		lines := make([]PricedLine, 0, len(entries))
		orderItems := make(datatypes.JSONSlice[model.OrderItem], 0, len(entries))
		for _, entry := range entries {
			item, ok := prices[entry.MenuItemID]
			if !ok || !item.Price.IsPositive() {
				log.Warnf("order for user %s: menu item %s missing or unpriced", userID, entry.MenuItemID)
				return apperrors.ErrMenuItemUnpriced
			}
			if entry.Quantity < 1 {
				return apperrors.ErrInvalidQuantity
			}
			lines = append(lines, PricedLine{UnitPrice: item.Price, Quantity: entry.Quantity})
			orderItems = append(orderItems, model.OrderItem{MenuItemID: entry.MenuItemID, Quantity: entry.Quantity})
		}

		total := OrderTotal(lines)
		if !total.IsPositive() {
			return apperrors.ErrInvalidTotal
		}

		o := &model.Order{
			UserID:     userID,
			Items:      orderItems,
			TotalPrice: total,
			Status:     model.OrderStatusPending,
		}
		if err := tx.Orders.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if s.clearCart {
			if err := tx.Carts.DeleteByUser(ctx, userID); err != nil {
				return fmt.Errorf("clear cart: %w", err)
			}
		}

		order, user = o, u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.confirm(ctx, user, order)
	return order, nil
}

// confirm mails the order summary. Delivery failures are logged and never fail the order.
func (s *orderService) confirm(ctx context.Context, user *model.User, order *model.Order) {
	if s.notifier == nil {
		return
	}
	body := fmt.Sprintf("Hi %s,\n\nyour order %s with %d item(s) was received. Total: %s.\n",
		user.Name, order.ID, len(order.Items), order.TotalPrice.StringFixed(2))
	if err := s.notifier.Send(ctx, user.Email, "Order confirmation", body); err != nil {
		log.Warnf("order %s: confirmation mail failed: %v", order.ID, err)
	}
}

// ListByUser returns the user's orders oldest first with each line joined to its menu item.
func (s *orderService) ListByUser(ctx context.Context, userID string) ([]model.OrderDetail, error) {
	orders, err := s.repos.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var ids []string
	for _, order := range orders {
		for _, item := range order.Items {
			ids = append(ids, item.MenuItemID)
		}
	}
	items, err := s.repos.Menu.FindBySlugIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	summaries := make(map[string]model.MenuItemSummary, len(items))
	for _, item := range items {
		summaries[item.SlugID] = item.Summary()
	}

	details := make([]model.OrderDetail, 0, len(orders))
	for _, order := range orders {
		lines := make([]model.OrderItemDetail, 0, len(order.Items))
		for _, item := range order.Items {
			line := model.OrderItemDetail{OrderItem: item}
			if summary, ok := summaries[item.MenuItemID]; ok {
				summary := summary
				line.MenuItem = &summary
			}
			lines = append(lines, line)
		}
		details = append(details, model.OrderDetail{
			ID:         order.ID,
			UserID:     order.UserID,
			Items:      lines,
			TotalPrice: order.TotalPrice,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
			UpdatedAt:  order.UpdatedAt,
		})
	}
	return details, nil
}

// UpdateStatus moves an order along its lifecycle. Only Pending orders can change.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !statemachine.IsKnown(status) {
		return nil, apperrors.ErrBadRequest
	}

	order, err := s.repos.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrderNotFound)
	}
	if err := statemachine.CanTransition(order.Status, status); err != nil {
		log.Infof("order %s: %v", id, err)
		return nil, apperrors.ErrInvalidStatusTransition
	}

	ok, err := s.repos.Orders.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !ok {
		// status changed underneath us
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated, err := s.repos.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrderNotFound)
	}
	return updated, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Orders.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrOrderNotFound)
	}
	return nil
}
