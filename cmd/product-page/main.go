package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/api"
	"github.com/MorseWayne/product_page/internal/config"
	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/hooks"
	"github.com/MorseWayne/product_page/internal/imageutil"
	"github.com/MorseWayne/product_page/internal/logger"
	"github.com/MorseWayne/product_page/internal/service"
	"github.com/MorseWayne/product_page/internal/view"
)

// AppDependencies 包含演示会话的全部依赖
type AppDependencies struct {
	Scope           *view.MemoryScope
	Gallery         *view.MemoryGallery
	Overlay         *view.MemoryOverlay
	Notifier        *view.MemoryNotifier
	Hub             *hooks.Hub
	ProductService  service.ProductService
	CartService     service.CartService
	QuantityService service.QuantityService
	RadioService    service.RadioService
}

// initConfigAndLogger 初始化配置和日志器
func initConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.App.Env, cfg.Log.Level, cfg.Log.Encoding, cfg.App.Name, cfg.App.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %v", err)
	}

	return cfg, lg, nil
}

// initDependencies 初始化依赖注入链：客户端 -> 视图作用域 -> 服务
func initDependencies(cfg *config.Config, lg *zap.Logger) *AppDependencies {
	client := api.NewClient(cfg.Storefront.BaseURL, cfg.Storefront.RequestTimeout, nil, lg)

	scope := view.NewMemoryScope()
	scope.Attributes = []view.AttributeElement{
		view.NewMemoryAttribute(1, domain.AttributeTypeSelect, "Small"),
		view.NewMemoryAttribute(2, domain.AttributeTypeSelect, "Medium"),
		view.NewMemoryAttribute(3, domain.AttributeTypeSelect, "Large"),
	}

	gallery := &view.MemoryGallery{}
	overlay := &view.MemoryOverlay{}
	notifier := &view.MemoryNotifier{}
	hub := hooks.NewHub(lg)
	caps := view.Capabilities{MultipartForms: true}
	sizes := imageutil.Sizes{Zoom: cfg.Theme.ZoomImageSize, Product: cfg.Theme.ProductImageSize}

	productService := service.NewProductService(scope, client, gallery, sizes, caps, lg)
	cartService := service.NewCartService(scope, client, overlay, notifier, hub, caps, cfg.Cart.SuggestionsLimit, lg)
	quantityService := service.NewQuantityService(scope, lg)
	radioService := service.NewRadioService(hub, lg)

	return &AppDependencies{
		Scope:           scope,
		Gallery:         gallery,
		Overlay:         overlay,
		Notifier:        notifier,
		Hub:             hub,
		ProductService:  productService,
		CartService:     cartService,
		QuantityService: quantityService,
		RadioService:    radioService,
	}
}

// registerHooks 把全局事件显式路由到当前页面区域的控制器实例
func registerHooks(deps *AppDependencies, lg *zap.Logger) {
	deps.Hub.On(hooks.TopicProductOptionChange, func(payload any) {
		event, ok := payload.(*hooks.OptionChangeEvent)
		if !ok {
			return
		}
		deps.ProductService.OptionsChanged(context.Background(), event.Changed, event.Form)
	})

	deps.Hub.On(hooks.TopicCartItemAdd, func(payload any) {
		event, ok := payload.(*hooks.CartAddEvent)
		if !ok {
			return
		}
		deps.CartService.AddToCart(context.Background(), event.Form)
	})

	deps.Hub.On(hooks.TopicCartQuantityUpdate, func(payload any) {
		quantity, _ := payload.(int)
		lg.Sugar().Infow("header cart badge updated", "quantity", quantity)
	})
}

// startDemoStorefront 启动演示用的店面桩服务，返回其基地址。
// 仅在未配置 STOREFRONT_BASE_URL 时使用，便于本地观察完整链路。
func startDemoStorefront(lg *zap.Logger) (string, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("/remote/v1/product-attributes/", func(w http.ResponseWriter, r *http.Request) {
		stock := 18
		purchasable, instock := true, true
		response := map[string]any{
			"data": domain.AttributeChangeResponse{
				Price: &domain.ProductPrice{
					WithTax:    &domain.FormattedValue{Formatted: "$112.00"},
					WithoutTax: &domain.FormattedValue{Formatted: "$100.00"},
				},
				SKU:                 "SHIRT-M",
				Stock:               &stock,
				Purchasable:         &purchasable,
				InStock:             &instock,
				Image:               &domain.ProductImage{Data: "https://cdn.example.com/images/{:size}/shirt.jpg"},
				OutOfStockBehavior:  "label_option",
				OutOfStockMessage:   "Out of stock",
				InStockAttributeIDs: []int{1, 2},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})

	mux.HandleFunc("/remote/v1/cart/add", func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"data": domain.ItemAddResult{CartItem: &domain.CartItem{Hash: "demo-hash"}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})

	mux.HandleFunc("/remote/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<div class="previewCart" data-cart-quantity="2">2 items</div>`)
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("listen demo storefront: %w", err)
	}
	go func() {
		if err := http.Serve(listener, mux); err != nil {
			lg.Sugar().Warnw("demo storefront stopped", "err", err)
		}
	}()

	return "http://" + listener.Addr().String(), nil
}

// runDemoSession 驱动一次模拟的购物会话：改选项、调数量、加购
func runDemoSession(deps *AppDependencies, lg *zap.Logger) {
	form := &domain.FormSnapshot{
		ProductID: "86",
		Fields: url.Values{
			"product_id":    {"86"},
			"attribute[95]": {"2"},
		},
	}

	// 1) 切换商品选项，页面各展示区同步服务端状态
	deps.Hub.Trigger(hooks.TopicProductOptionChange, &hooks.OptionChangeEvent{
		Changed: domain.OptionRef{Name: "attribute[95]", ControlType: "radio"},
		Form:    form,
	})

	vm := deps.Scope.ProductView()
	var labels []string
	for _, attr := range deps.Scope.AttributeElements() {
		labels = append(labels, attr.Label())
	}
	lg.Sugar().Infow("after option change",
		"price_with_tax", vm.PriceWithTax.Text(),
		"sku", vm.SKU.Text(),
		"stock", vm.Stock.Text(),
		"add_to_cart_enabled", vm.AddToCart.Enabled(),
		"attributes", strings.Join(labels, " | "))

	// 2) 单选控件反选：取消选中会重新触发一次选项变更
	radio := view.NewMemoryRadio(domain.OptionRef{Name: "attribute[95]", ControlType: "radio"}, true)
	deps.RadioService.Clicked(radio, form)
	lg.Sugar().Infow("after radio clear",
		"checked", radio.Checked(),
		"price_with_tax", vm.PriceWithTax.Text())

	// 3) 数量步进
	deps.QuantityService.Step(domain.StepIncrement)
	deps.QuantityService.Step(domain.StepIncrement)
	deps.QuantityService.Step(domain.StepDecrement)
	lg.Sugar().Infow("after quantity steps", "quantity", vm.QuantityInput.Value())

	// 4) 加购并打开预览浮层
	deps.Hub.Trigger(hooks.TopicCartItemAdd, &hooks.CartAddEvent{Form: form})
	lg.Sugar().Infow("after cart add",
		"overlay_opened", deps.Overlay.Opened,
		"overlay_content", deps.Overlay.Content,
		"alerts", deps.Notifier.Messages)
}

// main 为演示入口，协调各组件的初始化并驱动一次模拟会话
func main() {
	cfg, lg, err := initConfigAndLogger()
	if err != nil {
		log.Fatalf("failed to initialize config and logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.Storefront.BaseURL == "" {
		baseURL, err := startDemoStorefront(lg)
		if err != nil {
			lg.Sugar().Fatalw("failed to start demo storefront", "err", err)
		}
		cfg.Storefront.BaseURL = baseURL
		lg.Sugar().Infow("using demo storefront", "base_url", baseURL)
	}

	deps := initDependencies(cfg, lg)
	registerHooks(deps, lg)
	runDemoSession(deps, lg)
}
