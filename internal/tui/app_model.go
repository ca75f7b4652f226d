package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/charts"
	"github.com/MKhiriev/go-stock-dashboard/internal/forms"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenDashboard
	screenEOQ
	screenROP
	screenResult
	screenHistory
	screenAbout
)

var ctrlC = key.NewBinding(key.WithKeys("ctrl+c"))

type appModel struct {
	ctx           context.Context
	session       service.ClientSessionService
	historySvc    service.ClientHistoryService
	eoq           *forms.EOQController
	rop           *forms.ROPController
	authValidator *validators.AuthFormValidator
	history       *historyCache
	buildInfo     models.BuildInfo
	logger        *logger.Logger

	currentScreen screen
	resultBack    screen
	aboutBack     screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	dashboard   dashboardModel
	eoqForm     eoqFormModel
	ropForm     ropFormModel
	result      resultModel
	historyView historyModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
}

func newAppModel(ctx context.Context, t *TUI, notice string) appModel {
	m := appModel{
		ctx:           ctx,
		session:       t.services.SessionService,
		historySvc:    t.services.HistoryService,
		eoq:           t.eoq,
		rop:           t.rop,
		authValidator: validators.NewAuthFormValidator(),
		history:       t.history,
		buildInfo:     t.buildInfo,
		logger:        t.logger,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		dashboard:     newDashboardModel(),
		eoqForm:       newEOQFormModel(),
		ropForm:       newROPFormModel(),
		historyView:   newHistoryModel(),
	}
	m.welcome.notice = notice

	if user, ok := m.session.User(); ok && m.session.IsAuthenticated() {
		m.currentScreen = screenDashboard
		m.dashboard.user = user
		m.dashboard.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenDashboard {
		return tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadHistory())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, ctrlC) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteHistory(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			if m.currentScreen == screenRegister {
				m.register.errMsg = humanizeError(msg.err)
			} else {
				m.login.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		return m.enterDashboard()
	case historyLoadedMsg:
		m.dashboard.loading = false
		m.historyView.loading = false
		if msg.err != nil {
			if isSessionLost(msg.err) {
				return m.sessionLost()
			}
			m.showErrorf(humanizeError(msg.err))
		}
		m.applyHistory(msg.records)
		return m, nil
	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	case historyDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			switch {
			case isSessionLost(msg.err):
				return m.sessionLost()
			case errors.Is(msg.err, adapter.ErrNotFound):
				m.showErrorf("Registro não encontrado. Ele pode já ter sido excluído.")
			default:
				m.showErrorf(humanizeError(msg.err))
			}
			return m, nil
		}
		m.history.remove(msg.id)
		m.applyHistory(m.history.snapshot())
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("logout left a stored session behind")
		}
		m.resetSession()
		m.welcome.notice = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.result.status = "Não foi possível copiar: " + msg.err.Error()
		} else {
			m.result.status = "Resumo copiado!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.result.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.dashboard.loading {
			var cmd tea.Cmd
			m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenEOQ:
		return m.updateEOQ(msg)
	case screenROP:
		return m.updateROP(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenEOQ:
		body = m.eoqForm.View()
	case screenROP:
		body = m.ropForm.View()
	case screenResult:
		body = m.result.View()
	case screenHistory:
		body = m.historyView.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) enterDashboard() (tea.Model, tea.Cmd) {
	m.login = newLoginModel()
	m.register = newRegisterModel()
	m.welcome.notice = ""
	if user, ok := m.session.User(); ok {
		m.dashboard.user = user
	}
	m.dashboard.idx = 0
	m.dashboard.loading = true
	m.currentScreen = screenDashboard
	return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadHistory())
}

// sessionLost returns to the welcome screen after the backend rejected the
// token. The session service has already cleared it.
func (m appModel) sessionLost() (tea.Model, tea.Cmd) {
	m.resetSession()
	m.welcome.notice = msgSessionExpired
	return m, nil
}

func (m *appModel) resetSession() {
	m.history.clear()
	m.eoq.SetForm(models.EOQForm{})
	m.rop.SetForm(models.ROPForm{})
	m.eoqForm = newEOQFormModel()
	m.ropForm = newROPFormModel()
	m.dashboard = newDashboardModel()
	m.historyView = newHistoryModel()
	m.result = resultModel{}
	m.showConfirm = false
	m.pendingDelete = 0
	m.currentScreen = screenWelcome
}

func (m *appModel) applyHistory(records []models.HistoryRecord) {
	m.historyView.setRecords(records)
	m.dashboard.summary = charts.Summarize(records)
}

func (m appModel) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.eoqForm.submitting = false
	m.ropForm.submitting = false

	if msg.err != nil {
		if isSessionLost(msg.err) {
			return m.sessionLost()
		}
		switch msg.kind {
		case calculationEOQ:
			m.eoqForm.errMsg = humanizeError(msg.err)
		case calculationROP:
			m.ropForm.errMsg = humanizeError(msg.err)
		}
		return m, nil
	}

	switch msg.kind {
	case calculationEOQ:
		m.eoqForm.load(m.eoq.Form())
		m.eoq.Reset()
	case calculationROP:
		m.ropForm.load(m.rop.Form())
		m.rop.Reset()
	}

	result := msg.result
	if !m.session.IsAuthenticated() {
		// the refresh after the calculation had the token rejected; the
		// result stays on screen and esc leads to the welcome screen
		m.resetSession()
		m.welcome.notice = msgSessionExpired
		m.result = resultModel{result: &result}
		m.resultBack = screenWelcome
		m.currentScreen = screenResult
		return m, nil
	}

	m.result = resultModel{result: &result}
	m.resultBack = screenDashboard
	m.currentScreen = screenResult
	m.applyHistory(m.history.snapshot())
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.version):
		m.aboutBack = screenWelcome
		m.currentScreen = screenAbout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.login.submitting {
				m.login.errMsg = ""
				m.currentScreen = screenWelcome
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			form := m.login.form()
			if err := m.authValidator.Validate(m.ctx, form); err != nil {
				m.login.errMsg = humanizeError(err)
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(form)
		}
	}

	return m, m.login.update(msg)
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.register.submitting {
				m.register.errMsg = ""
				m.currentScreen = screenWelcome
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			form := m.register.form()
			if err := m.authValidator.Validate(m.ctx, form); err != nil {
				m.register.errMsg = humanizeError(err)
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(form)
		}
	}

	return m, m.register.update(msg)
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(dashboardItems)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openDashboardAction(m.dashboard.selected())
	case key.Matches(keyMsg, keys.history):
		return m.openDashboardAction(actionHistory)
	case key.Matches(keyMsg, keys.refresh):
		if m.dashboard.loading {
			return m, nil
		}
		m.dashboard.loading = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadHistory())
	case key.Matches(keyMsg, keys.version):
		return m.openDashboardAction(actionAbout)
	case key.Matches(keyMsg, keys.logout):
		return m.openDashboardAction(actionLogout)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openDashboardAction(action dashboardAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionEOQ:
		m.currentScreen = screenEOQ
		return m, textinput.Blink
	case actionROP:
		m.currentScreen = screenROP
		return m, textinput.Blink
	case actionHistory:
		m.currentScreen = screenHistory
		m.historyView.loading = true
		return m, m.cmdLoadHistory()
	case actionLastResult:
		if m.result.result == nil {
			if record := m.dashboard.summary.Latest; record != nil {
				result := record.Result
				m.result = resultModel{result: &result}
			}
		}
		m.resultBack = screenDashboard
		m.currentScreen = screenResult
	case actionAbout:
		m.aboutBack = screenDashboard
		m.currentScreen = screenAbout
	case actionLogout:
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m appModel) updateEOQ(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.eoqForm.submitting {
				m.eoqForm.errMsg = ""
				m.currentScreen = screenDashboard
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.eoqForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.eoqForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.eoqForm.submitting || m.eoq.Submitting() {
				return m, nil
			}
			m.eoq.SetForm(m.eoqForm.form())
			m.eoqForm.errMsg = ""
			m.eoqForm.submitting = true
			return m, m.cmdSubmitEOQ()
		}
	}

	return m, m.eoqForm.update(msg)
}

func (m appModel) updateROP(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.ropForm.submitting {
				m.ropForm.errMsg = ""
				m.currentScreen = screenDashboard
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.ropForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.ropForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.ropForm.submitting || m.rop.Submitting() {
				return m, nil
			}
			m.rop.SetForm(m.ropForm.form())
			m.ropForm.errMsg = ""
			m.ropForm.submitting = true
			return m, m.cmdSubmitROP()
		}
	}

	return m, m.ropForm.update(msg)
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.result.status = ""
		m.currentScreen = m.resultBack
	case key.Matches(keyMsg, keys.copy):
		text := resultSummary(m.result.result)
		if text == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		record, ok := m.historyView.current()
		if !ok {
			return m, nil
		}
		result := record.Result
		m.result = resultModel{result: &result}
		m.resultBack = screenHistory
		m.currentScreen = screenResult
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		record, ok := m.historyView.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fmt.Sprintf("Excluir o cálculo #%d?", record.ID)
		m.pendingDelete = record.ID
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		if m.historyView.loading {
			return m, nil
		}
		m.historyView.loading = true
		return m, m.cmdLoadHistory()
	}

	var cmd tea.Cmd
	m.historyView.table, cmd = m.historyView.table.Update(msg)
	return m, cmd
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.currentScreen = m.aboutBack
	}
	return m, nil
}

func (m appModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return authDoneMsg{err: session.Login(ctx, form.Email, form.Password)}
	}
}

func (m appModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return authDoneMsg{err: session.Register(ctx, form.Request())}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	cache := m.history
	return func() tea.Msg {
		records, err := cache.refresh(ctx)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m appModel) cmdSubmitEOQ() tea.Cmd {
	ctx := m.ctx
	ctrl := m.eoq
	return func() tea.Msg {
		result, err := ctrl.Submit(ctx)
		return submitDoneMsg{kind: calculationEOQ, result: result, err: err}
	}
}

func (m appModel) cmdSubmitROP() tea.Cmd {
	ctx := m.ctx
	ctrl := m.rop
	return func() tea.Msg {
		result, err := ctrl.Submit(ctx)
		return submitDoneMsg{kind: calculationROP, result: result, err: err}
	}
}

func (m appModel) cmdDeleteHistory(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.historySvc
	return func() tea.Msg {
		return historyDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
