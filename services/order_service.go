package services

import (
	"errors"
	"strings"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/utils"
	"gorm.io/gorm"
)

var (
	// ErrMissingFields keeps the original form message.
	ErrMissingFields = errors.New("ma'lumotlarni to'liq to'ldiring")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNoRoom        = errors.New("no room selected")
	ErrBadOrderType  = errors.New("unknown order type")
)

// StatusPublisher pushes order status events to live trackers. The
// websocket hub implements it; tests plug a recorder.
type StatusPublisher interface {
	PublishStatus(o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RoomRepo *repository.RoomRepository
	Events   StatusPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	roomRepo *repository.RoomRepository,
	events StatusPublisher,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RoomRepo: roomRepo, Events: events}
}

type PlaceOrderReq struct {
	Type         entity.OrderType `json:"type" binding:"required"`
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
}

// Place snapshots the cart into a PENDING order. Validation failures
// change nothing; success clears the cart and the room selection.
func (s *OrderService) Place(clientID string, req *PlaceOrderReq) (*entity.Order, error) {
	if !req.Type.Valid() {
		return nil, ErrBadOrderType
	}
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, ErrMissingFields
	}
	if req.Type == entity.OrderDelivery && strings.TrimSpace(req.Address) == "" {
		return nil, ErrMissingFields
	}

	cart, err := s.CartRepo.GetCartWithItems(clientID)
	if err != nil {
		return nil, err
	}

	var room *entity.Room
	switch req.Type {
	case entity.OrderDelivery:
		if len(cart.Items) == 0 {
			return nil, ErrEmptyCart
		}
	case entity.OrderReservation:
		if cart.RoomID == "" {
			return nil, ErrNoRoom
		}
		room, err = s.RoomRepo.Get(cart.RoomID)
		if err != nil {
			return nil, err
		}
	}

	total := cart.Subtotal()
	tableID := ""
	if room != nil {
		total += room.Price
		tableID = room.ID
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
		})
	}

	var order *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		order, txErr = s.createWithRetry(tx, &entity.Order{
			ClientID:     clientID,
			Type:         req.Type,
			Total:        total,
			Status:       entity.StatusPending,
			CustomerName: name,
			Phone:        phone,
			Address:      strings.TrimSpace(req.Address),
			TableID:      tableID,
			Items:        items,
		})
		if txErr != nil {
			return txErr
		}
		return s.CartRepo.ClearCart(tx, clientID)
	})
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		s.Events.PublishStatus(order)
	}
	return order, nil
}

// createWithRetry regenerates the short order number on a primary key
// clash. Three attempts cover the demo volume with room to spare.
func (s *OrderService) createWithRetry(tx *gorm.DB, o *entity.Order) (*entity.Order, error) {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		o.ID = utils.NewOrderID()
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		if err = s.Repo.CreateOrder(tx, o); err == nil {
			return o, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}
	return nil, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

func (s *OrderService) ListForClient(clientID string) ([]entity.Order, error) {
	return s.Repo.ListForClient(clientID)
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	return s.Repo.Get(id)
}

func (s *OrderService) ListActiveDeliveries() ([]entity.Order, error) {
	return s.Repo.ListActiveDeliveries()
}
