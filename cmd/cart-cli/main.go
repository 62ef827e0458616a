package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/carrito-web/internal/cart"
	"github.com/MikeMC777/carrito-web/internal/checkout"
	"github.com/MikeMC777/carrito-web/internal/config"
	"github.com/MikeMC777/carrito-web/internal/httpx"
	"github.com/MikeMC777/carrito-web/internal/ui"
	"github.com/MikeMC777/carrito-web/internal/ui/htmlview"
)

func main() {
	cfg := config.Load()

	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	cfg.Log(logger)

	initial := cart.Empty()
	if cfg.SnapshotFile != "" {
		raw, err := os.ReadFile(cfg.SnapshotFile)
		if err != nil {
			logger.Warn("cannot read cart snapshot", zap.String("file", cfg.SnapshotFile), zap.Error(err))
		}
		c, err := cart.ParseSnapshot(raw)
		if err != nil {
			logger.Warn("cart snapshot unusable, starting empty", zap.Error(err))
		}
		initial = c
	}

	presenter, page := wire(cfg, initial, logger)
	if err := run(context.Background(), os.Stdin, os.Stdout, presenter, page); err != nil {
		logger.Fatal("cart-cli stopped", zap.Error(err))
	}
}

// wire builds the store, clients and presenter over a page with every region.
func wire(cfg config.Config, initial cart.Cart, logger *zap.Logger) (*ui.Presenter, *htmlview.Page) {
	httpClient := httpx.NewClient(cfg.HTTPTimeout, logger)
	token := cart.StaticToken(cfg.CSRFToken)
	store := cart.NewStore(cart.NewClient(httpClient, cfg.CartBaseURL, token, logger), initial, logger)
	orders := checkout.NewClient(httpClient, cfg.CartBaseURL, token, logger)

	page := htmlview.NewPage(htmlview.WithCounter(), htmlview.WithModal(), htmlview.WithCheckout(), htmlview.WithNotifications())
	presenter := ui.NewPresenter(store, page, orders, ui.Options{
		NotifyTTL:        cfg.NotifyTTL,
		OpenDelay:        cfg.ModalOpenDelay,
		CloseDelay:       cfg.ModalCloseDelay,
		SettleDelay:      cfg.SettleDelay,
		PlaceholderImage: cfg.PlaceholderImage,
		Currency:         cfg.Currency,
		CheckoutURL:      cfg.CheckoutURL,
		ShopURL:          cfg.ShopURL,
		Log:              logger,
	})
	presenter.RefreshAll()
	return presenter, page
}

const usage = `commands:
  add <product_id> [size]       add to cart from the product grid
  inc|dec <product_id> [size]   change a line's quantity
  open | close | esc            cart modal
  checkout                      modal checkout button
  order <name> <phone> <address> <area>
  show | quit`

func run(ctx context.Context, in io.Reader, out io.Writer, p *ui.Presenter, page *htmlview.Page) error {
	fmt.Fprintln(out, usage)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return nil
		case "show":
		case "open":
			p.HandleEvent(ctx, ui.Event{Action: ui.ActionOpenCart})
		case "close":
			p.HandleEvent(ctx, ui.Event{Action: ui.ActionCloseCart})
		case "esc":
			p.HandleKey("Escape")
		case "add", "inc", "dec":
			if len(args) < 2 {
				fmt.Fprintln(out, "missing product id")
				continue
			}
			attrs := map[string]string{"data-product-id": args[1], "data-surface": ui.SurfaceModal}
			if len(args) > 2 {
				attrs["data-size"] = args[2]
			}
			attrs["data-action"] = map[string]string{
				"add": ui.ActionAddToCart, "inc": ui.ActionIncrement, "dec": ui.ActionDecrement,
			}[args[0]]
			o := p.HandleEvent(ctx, htmlview.EventFromAttrs(attrs))
			if o.Ignored {
				fmt.Fprintln(out, "busy, ignored")
			}
		case "checkout":
			o := p.HandleEvent(ctx, ui.Event{Action: ui.ActionModalCheckout})
			if o.Navigate == "" {
				fmt.Fprintln(out, "cart is empty")
				continue
			}
			fmt.Fprintln(out, "navigate:", o.Navigate)
		case "order":
			if len(args) < 5 {
				fmt.Fprintln(out, "usage: order <name> <phone> <address> <area>")
				continue
			}
			o := p.PlaceOrder(ctx, checkout.Form{FirstName: args[1], Phone: args[2], Address: args[3], Area: args[4]})
			switch {
			case o.Err != nil:
				fmt.Fprintln(out, "order failed:", o.Err)
			case o.Placed:
				fmt.Fprintln(out, "navigate:", o.RedirectURL, "after", o.RedirectAfter)
			}
		default:
			fmt.Fprintln(out, "unknown command", strconv.Quote(args[0]))
			continue
		}
		if _, err := page.WriteTo(out); err != nil {
			return err
		}
	}
}
