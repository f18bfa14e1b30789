package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/hooks"
	"github.com/MorseWayne/product_page/internal/view"
)

// RadioService 定义可反选单选控件的业务逻辑接口
type RadioService interface {
	// Clicked 处理一次单选控件点击：把状态机迁移结果写回控件，
	// 取消选中时重新触发选项变更，让页面各区域按最新表单状态刷新
	Clicked(radio view.RadioControl, form *domain.FormSnapshot)
}

// radioService 实现RadioService接口
type radioService struct {
	hub    *hooks.Hub
	logger *zap.Logger

	mu     sync.Mutex
	states map[view.RadioControl]*domain.RadioSelectionState
}

// NewRadioService 创建单选控件服务实例
func NewRadioService(hub *hooks.Hub, logger *zap.Logger) RadioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &radioService{
		hub:    hub,
		logger: logger,
		states: make(map[view.RadioControl]*domain.RadioSelectionState),
	}
}

// Clicked 处理一次单选控件点击
func (s *radioService) Clicked(radio view.RadioControl, form *domain.FormSnapshot) {
	state := s.stateFor(radio)

	checked := state.Click()
	radio.SetChecked(checked)

	if checked {
		return
	}

	// 取消选中后控件不会再产生原生变更通知，这里补发一次选项变更事件
	s.logger.Debug("radio selection cleared", zap.String("option", radio.Option().Name))
	s.hub.Trigger(hooks.TopicProductOptionChange, &hooks.OptionChangeEvent{
		Changed: radio.Option(),
		Form:    form,
	})
}

// stateFor 返回控件对应的状态机，首次访问时按控件当前选中状态初始化
func (s *radioService) stateFor(radio view.RadioControl) *domain.RadioSelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[radio]
	if !ok {
		state = domain.NewRadioSelectionState(radio.Checked())
		s.states[radio] = state
	}
	return state
}
