package tme

import (
	"fmt"
	"strings"
)

// Button is a semantic input button of the virtual console.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonSelect
	ButtonStart
	ButtonButton1
	ButtonButton2
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	ButtonNone:    "none",
	ButtonLeft:    "left",
	ButtonRight:   "right",
	ButtonUp:      "up",
	ButtonDown:    "down",
	ButtonSelect:  "select",
	ButtonStart:   "start",
	ButtonButton1: "button1",
	ButtonButton2: "button2",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// ParseButton resolves a button by name, ignoring case.
func ParseButton(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := ButtonLeft; b < ButtonCount; b++ {
		if buttonNames[b] == name {
			return b, true
		}
	}
	return ButtonNone, false
}

// Event is a discrete input event delivered by Engine.ReadInput.
type Event int

const (
	EventLeftPressed Event = iota
	EventLeftReleased
	EventRightPressed
	EventRightReleased
	EventUpPressed
	EventUpReleased
	EventDownPressed
	EventDownReleased
	EventSelectPressed
	EventSelectReleased
	EventStartPressed
	EventStartReleased
	EventButton1Pressed
	EventButton1Released
	EventButton2Pressed
	EventButton2Released
	EventTurnOff
	eventCount
)

var eventNames = [eventCount]string{
	"left_pressed", "left_released",
	"right_pressed", "right_released",
	"up_pressed", "up_released",
	"down_pressed", "down_released",
	"select_pressed", "select_released",
	"start_pressed", "start_released",
	"button1_pressed", "button1_released",
	"button2_pressed", "button2_released",
	"turn_off",
}

func (e Event) String() string {
	if e < 0 || e >= eventCount {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// ButtonEvent returns the event for a button press or release.
// Button events are laid out in pressed/released pairs in Button order.
func ButtonEvent(b Button, pressed bool) (Event, bool) {
	if b <= ButtonNone || b >= ButtonCount {
		return 0, false
	}
	e := Event(int(b-ButtonLeft) * 2)
	if !pressed {
		e++
	}
	return e, true
}

// Button returns the button an event refers to, or ButtonNone for
// EventTurnOff.
func (e Event) Button() Button {
	if e < 0 || e >= EventTurnOff {
		return ButtonNone
	}
	return ButtonLeft + Button(e/2)
}

// Pressed reports whether e is a press event.
func (e Event) Pressed() bool {
	return e >= 0 && e < EventTurnOff && e%2 == 0
}

// DefaultBindings maps platform key names to buttons.
func DefaultBindings() map[string]Button {
	return map[string]Button{
		"w":            ButtonUp,
		"a":            ButtonLeft,
		"s":            ButtonDown,
		"d":            ButtonRight,
		"left_control": ButtonButton1,
		"space":        ButtonButton2,
		"escape":       ButtonSelect,
		"enter":        ButtonStart,
	}
}
