package checkout

import (
	"net/url"
	"strconv"
)

// Form is the checkout form as the shopper filled it in. Field validation
// happens in the browser before it gets here. TotalAmount is the rounded
// integer total shown on the checkout summary.
type Form struct {
	FirstName       string
	Phone           string
	Address         string
	Area            string
	NearestLandmark string
	Notes           string
	TotalAmount     int64
}

func (f Form) values(csrf string) url.Values {
	v := url.Values{}
	v.Set("first_name", f.FirstName)
	v.Set("phone", f.Phone)
	v.Set("address", f.Address)
	v.Set("area", f.Area)
	v.Set("nearest_landmark", f.NearestLandmark)
	v.Set("notes", f.Notes)
	v.Set("total_amount", strconv.FormatInt(f.TotalAmount, 10))
	v.Set("csrfmiddlewaretoken", csrf)
	return v
}

// Receipt is the outcome of a successful submission. RedirectURL is empty
// when the server answered 2xx without redirecting.
type Receipt struct {
	RedirectURL string
}
