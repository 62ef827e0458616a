package cart

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Line is one purchasable configuration. Its identity is Key().
// unit_price travels as a decimal string ("50.00"); plain numbers are accepted too.
type Line struct {
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Qty         int             `json:"qty"`
	Size        string          `json:"size,omitempty"`
	SizeDisplay string          `json:"size_display,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// Key identifies a line: same product with a different size is a different line.
type Key struct {
	ProductID int
	Size      string
}

func (l Line) Key() Key { return Key{ProductID: l.ProductID, Size: l.Size} }

// Total is UnitPrice × Qty.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// SizeLabel is the human label for the size, empty when the line has no size.
func (l Line) SizeLabel() string {
	if l.Size == "" {
		return ""
	}
	if l.SizeDisplay != "" {
		return l.SizeDisplay
	}
	return l.Size
}

// Cart is the server-authoritative snapshot. Items keep the server's order.
type Cart struct {
	Items []Line `json:"items"`
}

// Empty returns a cart with no lines.
func Empty() Cart { return Cart{Items: []Line{}} }

func (c Cart) TotalQty() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Total())
	}
	return total
}

// Find returns the line with the given identity.
func (c Cart) Find(k Key) (Line, bool) {
	for _, it := range c.Items {
		if it.Key() == k {
			return it, true
		}
	}
	return Line{}, false
}

// Clone copies the line slice so callers can't alias the store's snapshot.
func (c Cart) Clone() Cart {
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

var errNoCart = errors.New("snapshot is empty")

// ParseSnapshot decodes the cart embedded in the page. Anything unreadable
// degrades to an empty cart; the error is returned only so callers can log it.
func ParseSnapshot(raw []byte) (Cart, error) {
	if len(raw) == 0 {
		return Empty(), errNoCart
	}
	var c *Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return Empty(), err
	}
	if c == nil {
		return Empty(), errNoCart
	}
	return normalize(*c), nil
}

func normalize(c Cart) Cart {
	if c.Items == nil {
		c.Items = []Line{}
	}
	return c
}
