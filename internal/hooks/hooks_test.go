package hooks

import "testing"

func TestHub_TriggerDeliversToRegisteredHandlers(t *testing.T) {
	hub := NewHub(nil)

	var got []any
	hub.On(TopicCartQuantityUpdate, func(payload any) {
		got = append(got, payload)
	})

	hub.Trigger(TopicCartQuantityUpdate, 3)
	hub.Trigger(TopicCartQuantityUpdate, 5)

	if len(got) != 2 || got[0].(int) != 3 || got[1].(int) != 5 {
		t.Errorf("delivered payloads = %v, want [3 5]", got)
	}
}

func TestHub_TriggerOnlyMatchingTopic(t *testing.T) {
	hub := NewHub(nil)

	optionChanges := 0
	cartAdds := 0
	hub.On(TopicProductOptionChange, func(any) { optionChanges++ })
	hub.On(TopicCartItemAdd, func(any) { cartAdds++ })

	hub.Trigger(TopicProductOptionChange, &OptionChangeEvent{})

	if optionChanges != 1 || cartAdds != 0 {
		t.Errorf("deliveries = (%d, %d), want (1, 0)", optionChanges, cartAdds)
	}
}

func TestHub_TriggerWithoutHandlersIsSafe(t *testing.T) {
	hub := NewHub(nil)
	// Must not panic
	hub.Trigger("unknown-topic", nil)
}

func TestHub_NilHandlerIgnored(t *testing.T) {
	hub := NewHub(nil)
	hub.On(TopicCartItemAdd, nil)
	hub.Trigger(TopicCartItemAdd, nil)
}

func TestHub_MultipleHandlersSameTopic(t *testing.T) {
	hub := NewHub(nil)

	first, second := 0, 0
	hub.On(TopicCartQuantityUpdate, func(any) { first++ })
	hub.On(TopicCartQuantityUpdate, func(any) { second++ })

	hub.Trigger(TopicCartQuantityUpdate, 1)

	if first != 1 || second != 1 {
		t.Errorf("deliveries = (%d, %d), want (1, 1)", first, second)
	}
}
