// Package toast displays transient notification boxes over a Bubble Tea
// view: styled message toasts, FIFO queueing and stacking, spring
// animated fades, tap to dismiss and an indeterminate activity spinner.
//
// A Manager lives in the host model. Show and its variants return
// commands for the host to run, Update consumes timer, frame, mouse and
// resize messages, and View composites the toasts over the rendered
// frame:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd := m.toasts.Update(msg)
//		...
//		return m, cmd
//	}
//
//	func (m model) View() string {
//		return m.toasts.View(m.body())
//	}
package toast
