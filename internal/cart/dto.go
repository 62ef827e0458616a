package cart

import (
	"net/url"
	"strconv"
)

// AddRequest is the form body of POST /add/.
type AddRequest struct {
	ProductID int
	Qty       int
	Size      string
}

func (r AddRequest) form(csrf string) url.Values {
	v := url.Values{}
	v.Set("product_id", strconv.Itoa(r.ProductID))
	v.Set("qty", strconv.Itoa(r.Qty))
	if r.Size != "" {
		v.Set("size", r.Size)
	}
	v.Set("csrfmiddlewaretoken", csrf)
	return v
}

// RemoveRequest is the form body of POST /remove/.
type RemoveRequest struct {
	ProductID int
	Size      string
}

func (r RemoveRequest) form(csrf string) url.Values {
	v := url.Values{}
	v.Set("product_id", strconv.Itoa(r.ProductID))
	if r.Size != "" {
		v.Set("size", r.Size)
	}
	v.Set("csrfmiddlewaretoken", csrf)
	return v
}

// Response is what /add/ and /remove/ answer with. Cart is nil when the
// server sent no cart payload.
type Response struct {
	OK    bool   `json:"ok"`
	Cart  *Cart  `json:"cart,omitempty"`
	Error string `json:"error,omitempty"`
}

// Result is what the store hands back to the UI for every mutation.
// It is never accompanied by a Go error: transport failures arrive as
// OK=false with Error=NetworkError and Transport set.
type Result struct {
	OK        bool
	Cart      *Cart
	Error     string
	Transport bool
}
