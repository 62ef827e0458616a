package cart

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//
// ---------- FAKE STOREFRONT ----------
//

type product struct {
	Name  string
	Price string
	// stock per size; "" for products without sizes
	Stock map[string]int
}

// fakeShop serves POST /add/ and POST /remove/ over one in-memory session cart.
type fakeShop struct {
	mu       sync.Mutex
	products map[int]product
	cart     Cart
	requests []map[string]string
	headers  []http.Header
}

func newFakeShop(t *testing.T, products map[int]product) (*httptest.Server, *fakeShop) {
	t.Helper()
	shop := &fakeShop{products: products, cart: Empty()}

	r := gin.New()
	r.POST("/add/", shop.add)
	r.POST("/remove/", shop.remove)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, shop
}

func (s *fakeShop) record(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := map[string]string{}
	for k := range c.Request.PostForm {
		form[k] = c.Request.PostForm.Get(k)
	}
	s.requests = append(s.requests, form)
	s.headers = append(s.headers, c.Request.Header.Clone())
}

func (s *fakeShop) add(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(c)

	id, _ := strconv.Atoi(c.PostForm("product_id"))
	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
	if err != nil || qty <= 0 {
		qty = 1
	}
	size := c.PostForm("size")
	p, ok := s.products[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Product not found"})
		return
	}
	if _, sized := p.Stock[""]; !sized && size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Please select a size"})
		return
	}
	inCart := 0
	idx := -1
	for i, it := range s.cart.Items {
		if it.ProductID == id && it.Size == size {
			inCart, idx = it.Qty, i
		}
	}
	if inCart+qty > p.Stock[size] {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Out of stock"})
		return
	}
	if idx >= 0 {
		s.cart.Items[idx].Qty += qty
	} else {
		s.cart.Items = append(s.cart.Items, Line{
			ProductID: id,
			Name:      p.Name,
			UnitPrice: decimal.RequireFromString(p.Price),
			Qty:       qty,
			Size:      size,
		})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": s.cart})
}

func (s *fakeShop) remove(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(c)

	id, _ := strconv.Atoi(c.PostForm("product_id"))
	size := c.PostForm("size")
	for i, it := range s.cart.Items {
		if it.ProductID == id && it.Size == size {
			s.cart.Items[i].Qty--
			if s.cart.Items[i].Qty <= 0 {
				s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			}
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": s.cart})
}

func (s *fakeShop) lastRequest() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func (s *fakeShop) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}
