package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Connect  key.Binding
	Submit   key.Binding
	Add      key.Binding
	NextIn   key.Binding
	PrevIn   key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Connect:  key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "conectar conta")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "conectar")),
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "adicionar")),
		NextIn:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próximo campo")),
		PrevIn:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "campo anterior")),
		ScrollUp: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "extrato")),
		ScrollDn: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "extrato")),
		Dismiss:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "sair")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	}
}

// helpKeys adapts a fixed binding set to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
