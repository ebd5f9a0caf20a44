package services

import (
	"errors"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransition   = errors.New("invalid_or_conflict")
	ErrForbiddenTransition = errors.New("forbidden")
	ErrNotDeliveryOrder    = errors.New("not a delivery order")
)

// courierTargets: the courier advances delivery orders to DELIVERING or
// COMPLETED. Both are reachable from any earlier state (the panel jumps
// straight to COMPLETED for handed-over orders); regressions never pass
// the guard.
var courierTargets = map[entity.OrderStatus]bool{
	entity.StatusDelivering: true,
	entity.StatusCompleted:  true,
}

// CourierAdvance moves a delivery order forward on behalf of the
// courier role.
func (s *OrderService) CourierAdvance(orderID string, to entity.OrderStatus) error {
	if !courierTargets[to] {
		return ErrForbiddenTransition
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return err
		}
		if o.Type != entity.OrderDelivery {
			return ErrNotDeliveryOrder
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, to.EarlierStatuses(), to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		o.Status = to
		if s.Events != nil {
			s.Events.PublishStatus(o)
		}
		return nil
	})
}

// Accept marks a pending order as accepted (manager or admin action).
func (s *OrderService) Accept(orderID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID,
			[]entity.OrderStatus{entity.StatusPending}, entity.StatusAccepted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		o.Status = entity.StatusAccepted
		if s.Events != nil {
			s.Events.PublishStatus(o)
		}
		return nil
	})
}
