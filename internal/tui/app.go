package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/app"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/internal/tree"
	"github.com/MKhiriev/ts3-users-bot/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// rows taken by the page frame around the viewport
	frameHeight = 12
	// columns taken by the app padding and page indent
	frameWidth = 6

	statusTTL = 2 * time.Second
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// viewerModel shows the rendered channel tree in a scrollable viewport.
type viewerModel struct {
	ctx             context.Context
	usersService    service.UsersService
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	loading    bool
	generation int

	rendering   string
	clientCount int
	updatedAt   time.Time
	lastErr     error
	status      string

	showBuildInfo bool
}

func newViewerModel(ctx context.Context, usersService service.UsersService, refreshInterval time.Duration, buildInfo models.AppBuildInfo) viewerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return viewerModel{
		ctx:             ctx,
		usersService:    usersService,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		spinner:         s,
		loading:         true,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadTree())
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width, height := max(msg.Width-frameWidth, 10), max(msg.Height-frameHeight, 3)
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.ready = true
		} else {
			m.viewport.Width = width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		if m.showBuildInfo {
			switch {
			case key.Matches(msg, keys.quit):
				return m, tea.Quit
			case key.Matches(msg, keys.esc), key.Matches(msg, keys.buildInfo):
				m.showBuildInfo = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.refresh):
			return m.startLoading()
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.copyText())
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case treeLoadedMsg:
		m.loading = false
		m.generation++
		if msg.err != nil {
			m.lastErr = msg.err
		} else {
			m.lastErr = nil
			m.rendering = tree.FormatChannelTree(msg.channels)
			m.clientCount = tree.CountClients(msg.channels)
			m.updatedAt = msg.at
		}
		if m.ready {
			m.viewport.SetContent(m.content())
		}
		return m, m.cmdScheduleRefresh()

	case refreshTickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		return m.startLoading()

	case copiedMsg:
		if msg.err != nil {
			m.status = "Ошибка копирования: " + msg.err.Error()
		} else {
			m.status = "Скопировано в буфер обмена"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m viewerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	title := titleStyle.Render("TS3: пользователи онлайн")
	if m.loading {
		title += "  " + m.spinner.View()
	}

	data := m.content()
	if m.ready {
		data = m.viewport.View()
	}

	footer := m.statusLine()
	if m.lastErr != nil {
		footer += "\n" + errorStyle.Render("Ошибка: "+humanizeError(m.lastErr))
	}

	hotKeys := "r обновить  c копировать  v о программе  ↑/↓ прокрутка  q выход"

	return appStyle.Render(renderPage(title, data+"\n\n"+footer, hotKeys))
}

func (m viewerModel) startLoading() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadTree())
}

func (m viewerModel) content() string {
	switch {
	case m.updatedAt.IsZero():
		return "Загрузка..."
	case m.rendering == "":
		return app.MsgNoUsersOnline
	default:
		return m.rendering
	}
}

func (m viewerModel) copyText() string {
	if m.rendering == "" {
		return app.MsgNoUsersOnline
	}
	return m.rendering
}

func (m viewerModel) statusLine() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	if m.updatedAt.IsZero() {
		return ""
	}
	return statusStyle.Render(fmt.Sprintf("Обновлено: %s  пользователей: %d",
		m.updatedAt.Format("15:04:05"), m.clientCount))
}

func (m viewerModel) cmdLoadTree() tea.Cmd {
	ctx := m.ctx
	svc := m.usersService
	return func() tea.Msg {
		channels, err := svc.ListChannels(ctx)
		return treeLoadedMsg{channels: channels, err: err, at: time.Now()}
	}
}

func (m viewerModel) cmdScheduleRefresh() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	generation := m.generation
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{generation: generation}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
