// Package tui is the interactive terminal front end: a login form plus four
// dashboard tabs (overview, timeline, xp, skills) over one loaded profile.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/internal/browser"
	"github.com/naveenspark/gradia/pkg/client"
	"github.com/naveenspark/gradia/pkg/domain"
)

type view int

const (
	viewLogin view = iota
	viewOverview
	viewTimeline
	viewXP
	viewSkills
)

// dashboardMsg carries the result of a full profile load.
type dashboardMsg struct {
	dash *domain.Dashboard
	err  error
}

// App is the root Bubbletea model.
type App struct {
	client     *client.Client
	profileURL string
	view       view
	login      loginModel
	overview   overviewModel
	timeline   timelineModel
	xp         xpModel
	skills     skillsModel
	dash       *domain.Dashboard
	loading    bool
	loadErr    string
	width      int
	height     int
}

// NewApp creates the TUI application. profileURL is the web profile page
// opened by the browser key.
func NewApp(c *client.Client, profileURL string) App {
	return App{
		client:     c,
		profileURL: profileURL,
		view:       viewOverview,
		login:      newLoginModel(c),
		loading:    true,
	}
}

func (a App) Init() tea.Cmd {
	return a.loadDashboard()
}

func (a App) loadDashboard() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		dash, err := c.FetchDashboard(context.Background())
		return dashboardMsg{dash: dash, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.login, _ = a.login.Update(bodyMsg)
		a.overview, _ = a.overview.Update(bodyMsg)
		a.timeline, _ = a.timeline.Update(bodyMsg)
		a.xp, _ = a.xp.Update(bodyMsg)
		a.skills, _ = a.skills.Update(bodyMsg)
		return a, nil

	case loginResultMsg:
		if msg.err != nil {
			a.login, _ = a.login.Update(msg)
			return a, nil
		}
		a.view = viewOverview
		a.loading = true
		a.loadErr = ""
		return a, a.loadDashboard()

	case dashboardMsg:
		a.loading = false
		if msg.err != nil {
			if client.IsAuthFailure(msg.err) {
				a.dash = nil
				a.view = viewLogin
				a.login = newLoginModel(a.client)
				return a, nil
			}
			a.loadErr = msg.err.Error()
			return a, nil
		}
		a.dash = msg.dash
		a.loadErr = ""
		a.overview = newOverviewModel(msg.dash, a.width)
		a.timeline = newTimelineModel(msg.dash, a.height-4)
		a.xp = newXPModel(msg.dash, a.width, a.height-4)
		a.skills = newSkillsModel(msg.dash, a.width)
		return a, nil

	case tea.KeyMsg:
		if a.view == viewLogin {
			switch msg.String() {
			case "ctrl+c", "esc":
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.login, cmd = a.login.Update(msg)
			return a, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.view = viewOverview
			return a, nil
		case "2":
			a.view = viewTimeline
			return a, nil
		case "3":
			a.view = viewXP
			return a, nil
		case "4":
			a.view = viewSkills
			return a, nil
		case "r":
			a.loading = true
			a.loadErr = ""
			return a, a.loadDashboard()
		case "o":
			browser.Open(a.profileURL) //nolint:errcheck // best-effort browser open
			return a, nil
		case "l":
			return a, a.logout()
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewOverview:
		a.overview, cmd = a.overview.Update(msg)
	case viewTimeline:
		a.timeline, cmd = a.timeline.Update(msg)
	case viewXP:
		a.xp, cmd = a.xp.Update(msg)
	case viewSkills:
		a.skills, cmd = a.skills.Update(msg)
	}
	return a, cmd
}

// logout clears the session and drops straight back to the login form.
func (a App) logout() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		c.Logout() //nolint:errcheck // a failed file removal still ends the session
		return dashboardMsg{err: client.ErrNotAuthenticated}
	}
}

func (a App) View() string {
	if a.view == viewLogin {
		return a.login.View() + "\n " + helpEntry("enter", "sign in") + "  " + helpEntry("tab", "next field") + "  " + helpEntry("esc", "quit")
	}

	header := " " + titleStyle.Render("GRADIA")
	if a.dash != nil {
		id := selectedStyle.Render(a.dash.User.Login)
		if name := a.dash.User.FullName(); name != "" {
			id += " " + metaStyle.Render(name)
		}
		header += "  " + id
	}
	if a.loading {
		header += "  " + dimStyle.Render("loading...")
	}

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Overview", viewOverview},
		{"2", "Timeline", viewTimeline},
		{"3", "XP", viewXP},
		{"4", "Skills", viewSkills},
	}
	var tabBar strings.Builder
	tabBar.WriteString(" ")
	for i, t := range tabs {
		if i > 0 {
			tabBar.WriteString("   ")
		}
		if t.v == a.view {
			tabBar.WriteString(accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name))
		} else {
			tabBar.WriteString(metaStyle.Render(t.key) + " " + dimStyle.Render(t.name))
		}
	}

	var body, help string
	switch {
	case a.loadErr != "":
		body = "\n  " + errorStyle.Render("load failed: "+a.loadErr) + "\n  " + dimStyle.Render("r retries")
		help = " " + helpEntry("r", "retry") + "  " + helpEntry("q", "quit")
	case a.dash == nil:
		body = "\n  " + dimStyle.Render("loading profile...")
		help = " " + helpEntry("q", "quit")
	default:
		switch a.view {
		case viewOverview:
			body = a.overview.View()
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("c", "copy email") + "  " + helpEntry("o", "browser") + "  " + helpEntry("r", "reload") + "  " + helpEntry("l", "logout") + "  " + helpEntry("q", "quit")
		case viewTimeline:
			body = a.timeline.View()
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "scroll") + "  " + helpEntry("r", "reload") + "  " + helpEntry("l", "logout") + "  " + helpEntry("q", "quit")
		case viewXP:
			body = a.xp.View()
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "scroll") + "  " + helpEntry("r", "reload") + "  " + helpEntry("l", "logout") + "  " + helpEntry("q", "quit")
		case viewSkills:
			body = a.skills.View()
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("r", "reload") + "  " + helpEntry("l", "logout") + "  " + helpEntry("q", "quit")
		}
	}

	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar.String(), body, help)
}
