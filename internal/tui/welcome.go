package tui

type welcomeModel struct {
	items  []string
	idx    int
	notice string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Entrar", "Criar conta"}}
}

func (m welcomeModel) View() string {
	out := viewTitle(appName) + "\nOtimização de estoque: lote econômico (EOQ) e ponto de pedido (ROP)\n\n"
	if m.notice != "" {
		out += successStyle.Render(m.notice) + "\n\n"
	}
	for i, item := range m.items {
		cursor := "  "
		line := item
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(item)
		}
		out += cursor + line + "\n"
	}
	out += "\n" + helpStyle.Render("enter: selecionar • v: versão • q: sair")
	return out
}
