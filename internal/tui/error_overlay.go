package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Erro") + "\n\n" + m.message + "\n\nenter / esc fechar"
	return overlayBoxStyle.BorderForeground(colorDanger).Render(content)
}
