package entity

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusAccepted   OrderStatus = "ACCEPTED"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusCompleted  OrderStatus = "COMPLETED"
)

// statusSteps is the linear lifecycle. Transitions only ever move to a
// later index; who may move to which target is decided in the order
// service per role.
var statusSteps = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusDelivering,
	StatusCompleted,
}

var statusLabels = map[OrderStatus]string{
	StatusPending:    "Kutilmoqda",
	StatusAccepted:   "Buyurtma qabul qilindi, tayyorlanmoqda",
	StatusDelivering: "Buyurtma yo'lda, yetkazib berilmoqda",
	StatusCompleted:  "Yakunlandi",
}

func StatusSteps() []OrderStatus {
	out := make([]OrderStatus, len(statusSteps))
	copy(out, statusSteps)
	return out
}

func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

// Index is the position within the lifecycle, -1 for unknown values.
func (s OrderStatus) Index() int {
	for i, st := range statusSteps {
		if st == s {
			return i
		}
	}
	return -1
}

// Progress is the tracker fill fraction: index / (steps - 1).
// DELIVERING is step 2 of 4, so 2/3.
func (s OrderStatus) Progress() float64 {
	idx := s.Index()
	if idx < 0 {
		return 0
	}
	return float64(idx) / float64(len(statusSteps)-1)
}

// Before reports whether s comes strictly earlier in the lifecycle.
func (s OrderStatus) Before(other OrderStatus) bool {
	return s.Index() >= 0 && other.Index() >= 0 && s.Index() < other.Index()
}

// EarlierStatuses lists every status that comes before s. The order
// repository uses this set as the compare-and-swap guard, which keeps
// forward skips possible while making regressions unreachable.
func (s OrderStatus) EarlierStatuses() []OrderStatus {
	idx := s.Index()
	if idx <= 0 {
		return nil
	}
	out := make([]OrderStatus, idx)
	copy(out, statusSteps[:idx])
	return out
}

// Label is the customer-facing status text.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}
