package service

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/view"
)

// QuantityService 定义数量步进业务逻辑接口
type QuantityService interface {
	// Step 处理一次 +/- 点击，同步写回隐藏输入与可见文案，不发起网络请求
	Step(direction domain.StepDirection)
}

// quantityService 实现QuantityService接口
type quantityService struct {
	scope  view.Scope
	logger *zap.Logger
}

// NewQuantityService 创建数量步进服务实例
func NewQuantityService(scope view.Scope, logger *zap.Logger) QuantityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quantityService{scope: scope, logger: logger}
}

// Step 处理一次数量步进
func (s *quantityService) Step(direction domain.StepDirection) {
	vm := s.scope.ProductView()
	if vm.QuantityInput == nil {
		return
	}

	bounds := vm.QuantityInput.Bounds()
	quantity, err := strconv.Atoi(vm.QuantityInput.Value())
	if err != nil {
		// 当前值无法解析时收敛到生效下限，避免把坏值继续传播
		s.logger.Debug("non-numeric quantity, clamping to min", zap.String("value", vm.QuantityInput.Value()))
		quantity = bounds.EffectiveMin()
	} else {
		quantity = bounds.Step(quantity, direction)
	}

	text := strconv.Itoa(quantity)
	vm.QuantityInput.SetValue(text)
	if vm.QuantityText != nil {
		vm.QuantityText.SetText(text)
	}
}
