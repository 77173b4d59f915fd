// Package widgets provides the concrete widget kinds built on pkg/core.
//
// Every widget embeds core.Base and takes its appearance from the theme its
// partial id resolves to:
//
//	title := widgets.NewLabel("Hello")
//	tree.AddChild(core.RootHandle, title)
//
//	ok := widgets.NewButton("OK")
//	ok.OnClick(func(b *widgets.Button) { fmt.Println(b.Text(), "clicked") })
//	tree.AddChild(core.RootHandle, ok)
//
// Importing this package registers Label as the materializer for
// theme-declared label children.
package widgets
