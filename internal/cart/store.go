package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is the only writer of the cart snapshot. Every mutation goes
// through the server; the snapshot is swapped wholesale when the server
// answers with a cart and left alone otherwise.
type Store struct {
	api API
	log *zap.Logger

	mu   sync.RWMutex
	cart Cart
}

func NewStore(api API, initial Cart, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{api: api, log: log, cart: normalize(initial.Clone())}
}

// AddLine asks the server to add qty units of (productID, size).
// qty <= 0 means 1.
func (s *Store) AddLine(ctx context.Context, productID, qty int, size string) Result {
	if productID <= 0 {
		return s.invalid("add", productID)
	}
	if qty <= 0 {
		qty = 1
	}
	res, err := s.api.Add(ctx, AddRequest{ProductID: productID, Qty: qty, Size: size})
	return s.settle("add", productID, size, res, err)
}

// RemoveLine asks the server to decrement or drop the (productID, size) line.
func (s *Store) RemoveLine(ctx context.Context, productID int, size string) Result {
	if productID <= 0 {
		return s.invalid("remove", productID)
	}
	res, err := s.api.Remove(ctx, RemoveRequest{ProductID: productID, Size: size})
	return s.settle("remove", productID, size, res, err)
}

func (s *Store) invalid(op string, productID int) Result {
	s.log.Warn("rejected cart mutation before request",
		zap.String("op", op), zap.Int("product_id", productID), zap.Error(ErrValidation))
	return Result{OK: false, Error: "Invalid product"}
}

func (s *Store) settle(op string, productID int, size string, res *Response, err error) Result {
	if err != nil || res == nil {
		if err == nil {
			err = ErrTransport
		}
		s.log.Error("cart request failed",
			zap.String("op", op), zap.Int("product_id", productID), zap.String("size", size),
			zap.Bool("transport", errors.Is(err, ErrTransport)), zap.Error(err))
		return Result{OK: false, Error: NetworkError, Transport: true}
	}
	if !res.OK {
		s.log.Info("cart mutation rejected",
			zap.String("op", op), zap.Int("product_id", productID), zap.String("size", size),
			zap.String("reason", res.Error))
		return Result{OK: false, Error: res.Error}
	}
	if res.Cart == nil {
		// ok without a cart: keep what we have rather than blanking the items
		s.log.Warn("cart response without payload", zap.String("op", op))
		snap := s.Snapshot()
		return Result{OK: true, Cart: &snap}
	}
	next := normalize(res.Cart.Clone())
	s.replace(next)
	s.log.Debug("cart replaced",
		zap.String("op", op), zap.Int("lines", len(next.Items)), zap.Int("total_qty", next.TotalQty()))
	out := next.Clone()
	return Result{OK: true, Cart: &out}
}

// replace swaps the snapshot in one step. Only settle calls it, with the
// cart from a successful server answer; whichever answer lands last wins.
func (s *Store) replace(c Cart) {
	c = normalize(c.Clone())
	s.mu.Lock()
	s.cart = c
	s.mu.Unlock()
}

// Snapshot returns a copy of the live cart.
func (s *Store) Snapshot() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

func (s *Store) TotalQty() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalQty()
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalPrice()
}

func (s *Store) IsEmpty() bool { return s.TotalQty() == 0 }
