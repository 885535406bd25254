package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepLoggingIn
	stepEnteringPumpName
	stepEnteringLongitude
	stepEnteringLatitude
	stepCreatingPump
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	email        string
	password     string
	authToken    string
	userID       string
	pumpName     string
	longitude    float64
	latitude     float64
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	userID string
	token  string
}
type pumpCreatedMsg struct {
	pumpID string
	name   string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:         stepEnteringServer,
		currentInput: defaultServerURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func loginUser(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server unreachable: %w", err)}
		}
		defer resp.Body.Close()

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}
		if resp.StatusCode != http.StatusOK || !env.Success {
			return errMsg{fmt.Errorf("login failed: %s", env.Message)}
		}

		var data struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
			return errMsg{fmt.Errorf("login response missing token")}
		}

		return loginSuccessMsg{userID: data.User.ID, token: data.Token}
	}
}

func createPump(serverURL, token, name string, longitude, latitude float64) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]interface{}{
			"name":      name,
			"longitude": longitude,
			"latitude":  latitude,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/pumps", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server unreachable: %w", err)}
		}
		defer resp.Body.Close()

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}
		if resp.StatusCode != http.StatusCreated || !env.Success {
			return errMsg{fmt.Errorf("pump creation failed: %s", env.Message)}
		}

		var pump struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(env.Data, &pump); err != nil {
			return errMsg{fmt.Errorf("pump response malformed")}
		}

		return pumpCreatedMsg{pumpID: pump.ID, name: pump.Name}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			switch m.step {
			case stepEnteringServer, stepEnteringEmail, stepEnteringPassword,
				stepEnteringPumpName, stepEnteringLongitude, stepEnteringLatitude:
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringServer:
				if m.currentInput != "" {
					m.serverURL = strings.TrimRight(m.currentInput, "/")
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, loginUser(m.serverURL, m.email, m.password)
				}

			case stepEnteringPumpName:
				if m.currentInput != "" {
					m.pumpName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLongitude
				}

			case stepEnteringLongitude:
				lon, err := strconv.ParseFloat(m.currentInput, 64)
				if err != nil || lon < -180 || lon > 180 {
					m.message = errorStyle.Render("longitude must be a number between -180 and 180")
					m.currentInput = ""
					return m, nil
				}
				m.longitude = lon
				m.currentInput = ""
				m.message = ""
				m.step = stepEnteringLatitude

			case stepEnteringLatitude:
				lat, err := strconv.ParseFloat(m.currentInput, 64)
				if err != nil || lat < -90 || lat > 90 {
					m.message = errorStyle.Render("latitude must be a number between -90 and 90")
					m.currentInput = ""
					return m, nil
				}
				m.latitude = lat
				m.currentInput = ""
				m.step = stepCreatingPump
				m.message = "Registering pump..."
				return m, createPump(m.serverURL, m.authToken, m.pumpName, m.longitude, m.latitude)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case loginSuccessMsg:
		m.userID = msg.userID
		m.authToken = msg.token
		m.step = stepEnteringPumpName
		m.message = successStyle.Render("Logged in as " + m.email)

	case pumpCreatedMsg:
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("Pump %q registered!\nIt will report as \"off\" until switched on.", msg.name))

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		switch m.step {
		case stepLoggingIn:
			m.step = stepEnteringEmail
		case stepCreatingPump:
			m.step = stepEnteringPumpName
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("AgriWise Field Setup Tool\n\n"))

	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringServer:
		s.WriteString(promptStyle.Render("Server URL:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepCreatingPump:
		// message already rendered above

	case stepEnteringPumpName:
		s.WriteString(promptStyle.Render("New pump name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLongitude:
		s.WriteString(promptStyle.Render("Pump longitude:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLatitude:
		s.WriteString(promptStyle.Render("Pump latitude:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepComplete:
		s.WriteString("Press Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
