package htmlview

const counterTmpl = `{{define "counter"}}<span class="cart-counter"{{if not .Visible}} hidden{{end}}>{{.Count}}</span>{{end}}`

const modalTmpl = `{{define "modal"}}<div class="cart-modal{{if active}} active{{end}}" id="cartModal"{{if not visible}} hidden{{end}}>
<div class="cart-overlay" data-action="close-cart"></div>
<div class="cart-content">
<div class="cart-header"><h2>Your Cart</h2><button class="cart-close" data-action="close-cart">&times;</button></div>
<div class="cart-body"><div class="cart-items" id="cartItems">
{{- if .Empty}}<div class="empty-cart">Your cart is empty</div>
{{- else}}{{range .Lines}}
<div class="cart-item" data-product-id="{{.ProductID}}" data-size="{{.Size}}">
<img src="{{.ImageURL}}" alt="{{.Name}}" class="cart-item-image">
<div class="cart-item-details">
<div class="cart-item-name">{{.Name}}</div>
{{- if .SizeLabel}}<div class="cart-item-size">Size: {{.SizeLabel}}</div>{{end}}
<div class="cart-item-price">{{.UnitPrice}} {{$.Currency}}</div>
<div class="cart-item-qty">
<button class="qty-btn" data-action="qty-dec" data-surface="modal" data-product-id="{{.ProductID}}" data-size="{{.Size}}"{{if pending "modal" "qty-dec" .ProductID .Size}} disabled{{end}}>-</button>
<span>{{.Qty}}</span>
<button class="qty-btn" data-action="qty-inc" data-surface="modal" data-product-id="{{.ProductID}}" data-size="{{.Size}}"{{if pending "modal" "qty-inc" .ProductID .Size}} disabled{{end}}>+</button>
</div>
</div>
</div>{{end}}{{end}}
</div></div>
<div class="cart-footer">
<div class="cart-total"><strong>Total: <span id="cartTotal">{{.Total}}</span> {{.Currency}}</strong></div>
<button class="checkout-btn" id="modalCheckoutBtn" data-action="modal-checkout"{{if not .CheckoutEnabled}} disabled{{end}}>{{.CheckoutLabel}}</button>
</div>
</div>
</div>{{end}}`

const checkoutTmpl = `{{define "checkout"}}<div id="checkoutCartItems">
{{- if .Empty}}<div class="empty-checkout-cart"><p>Your cart is empty</p><a href="{{.ShopURL}}">Continue Shopping</a></div>
{{- else}}{{range .Lines}}
<div class="checkout-cart-item" data-product-id="{{.ProductID}}" data-size="{{.Size}}">
<img src="{{.ImageURL}}" alt="{{.Name}}" class="checkout-item-image">
<div class="checkout-item-details">
<div class="checkout-item-name">{{.Name}}</div>
{{- if .SizeLabel}}<div class="checkout-item-size">Size: {{.SizeLabel}}</div>{{end}}
<div class="checkout-item-meta">
<div class="checkout-item-qty">
<button class="qty-btn" type="button" data-action="qty-dec" data-surface="checkout" data-product-id="{{.ProductID}}" data-size="{{.Size}}"{{if pending "checkout" "qty-dec" .ProductID .Size}} disabled{{end}}>-</button>
<span class="qty-display">{{.Qty}}</span>
<button class="qty-btn" type="button" data-action="qty-inc" data-surface="checkout" data-product-id="{{.ProductID}}" data-size="{{.Size}}"{{if pending "checkout" "qty-inc" .ProductID .Size}} disabled{{end}}>+</button>
</div>
<span class="checkout-item-price">{{.LineTotal}} {{$.Currency}}</span>
</div>
</div>
</div>{{end}}{{end}}
</div>
{{- if not .Empty}}
<div id="add-more"><a href="{{.ShopURL}}">Add more items?</a></div>{{end}}
<div class="checkout-summary">
<span id="checkoutSubtotal">{{.Subtotal}} {{.Currency}}</span>
<span id="checkoutTotal">{{.Total}} {{.Currency}}</span>
<input type="hidden" id="total_amount" name="total_amount" value="{{.TotalAmount}}">
<button id="placeOrderBtn" type="submit" data-action="place-order"{{if or (not .PlaceOrderEnabled) (pending "checkout" "place-order" 0 "")}} disabled{{end}}>{{if pending "checkout" "place-order" 0 ""}}Processing Order...{{else}}Place Order{{end}}</button>
</div>{{end}}`

const notificationTmpl = `{{define "notification"}}<div class="cart-notification {{.Kind}}" data-notification-id="{{.ID}}">{{.Message}}</div>{{end}}`
