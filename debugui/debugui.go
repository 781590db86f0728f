// Package debugui provides immediate-mode GUI integration for the simulation
// using Dear ImGui. ImGui rendering and input state flow through ECS
// components and systems like everything else.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tankfield/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function. Attach
// this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Input-handling systems consult it to stay out of ImGui's way.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render
// functions to the end of the frame, inside the backend's Begin/EndFrame
// pair. It also refreshes the ImguiInputState singleton.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range s.Items.Iter() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}
