// Package tui implements the terminal preview of the landing page carousel.
//
// The preview drives the same carousel controller as the web page, so copy
// and theme changes can be reviewed from a terminal without a browser. Built
// using the Bubble Tea framework, it follows the Model-Update-View pattern:
// key presses become carousel events and the view is re-rendered from the
// controller on every frame.
//
// # Key Bindings
//
//	← / h   previous feature
//	→ / l   next feature
//	1-9     jump to a feature
//	?       toggle full help
//	q       quit
//
// # Usage Example
//
//	doc, _ := content.Load()
//	model, err := tui.New(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// When stdout is not a terminal, WritePlain prints every feature as a plain
// numbered listing instead.
package tui
