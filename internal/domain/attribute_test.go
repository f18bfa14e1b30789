package domain

import "testing"

func TestParseBehaviorMode(t *testing.T) {
	tests := []struct {
		input string
		want  BehaviorMode
	}{
		{"hide_option", BehaviorHideOption},
		{"label_option", BehaviorLabelOption},
		{"none", BehaviorNone},
		{"", BehaviorNone},
		{"something_else", BehaviorNone},
	}

	for _, tt := range tests {
		if got := ParseBehaviorMode(tt.input); got != tt.want {
			t.Errorf("ParseBehaviorMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBehaviorMode_Active(t *testing.T) {
	if BehaviorNone.Active() {
		t.Error("none must not activate the availability pass")
	}
	if !BehaviorHideOption.Active() || !BehaviorLabelOption.Active() {
		t.Error("hide_option and label_option must activate the availability pass")
	}
}

func TestAttributeType_IsListStyle(t *testing.T) {
	tests := []struct {
		attrType AttributeType
		want     bool
	}{
		{AttributeTypeSelect, true},
		{AttributeTypeProductList, false},
		{AttributeTypeRadio, false},
		{AttributeTypeSwatch, false},
		{AttributeTypeCheckbox, false},
		{AttributeTypeRectangle, false},
		{AttributeTypeUnknown, false},
	}

	for _, tt := range tests {
		if got := tt.attrType.IsListStyle(); got != tt.want {
			t.Errorf("%q.IsListStyle() = %v, want %v", tt.attrType, got, tt.want)
		}
	}
}

func TestRadioSelectionState(t *testing.T) {
	// Clicking an unselected control selects it; clicking again deselects it
	state := NewRadioSelectionState(false)
	if checked := state.Click(); !checked {
		t.Error("first click should select")
	}
	if checked := state.Click(); checked {
		t.Error("second click should deselect")
	}
	if state.Selected() {
		t.Error("state should report unselected after deselection")
	}

	// A control rendered already checked deselects on its first click
	state = NewRadioSelectionState(true)
	if checked := state.Click(); checked {
		t.Error("click on a pre-checked control should deselect")
	}
}

func TestOptionRef_IsFileInput(t *testing.T) {
	if !(OptionRef{ControlType: "file"}).IsFileInput() {
		t.Error("file control must be recognized")
	}
	if (OptionRef{ControlType: "select"}).IsFileInput() {
		t.Error("select control is not a file input")
	}
}
