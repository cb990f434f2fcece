package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/mergechat/internal/backend"
	"github.com/atomicstack/mergechat/internal/data/dispatcher"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/ui/command"
	uistate "github.com/atomicstack/mergechat/internal/ui/state"
	"github.com/atomicstack/mergechat/internal/window"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const pickerTitle = "windows"

type msgHandler func(tea.Msg) tea.Cmd

// WindowHost is the window service the terminal host drives.
type WindowHost interface {
	command.Host
	RequestClose(id window.ID) bool
	Events() <-chan backend.Event
}

// Config carries the startup settings for NewModel.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Presets    dispatcher.Presets
	Fields     map[state.Field]string
}

// Model implements the Bubble Tea model for the session host. It shows one
// focused window at a time with a tab bar over all open windows.
type Model struct {
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	host       WindowHost
	events     <-chan backend.Event

	focused window.ID
	cursor  int
	inputs  map[state.Field]*textinput.Model
	picker  *uistate.Picker

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. host may be nil, in which case every
// open fails.
func NewModel(host WindowHost, cfg Config) *Model {
	m := &Model{
		dispatcher: dispatcher.New(state.NewRegistry(), state.NewFields(), cfg.Presets),
		host:       host,
		showFooter: cfg.ShowFooter,
		inputs:     newFieldInputs(),
	}
	if host != nil {
		m.bus = command.New(host)
		m.events = host.Events()
	} else {
		m.bus = command.New(nil)
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	for _, name := range fieldOrder {
		if value, ok := cfg.Fields[name]; ok {
			m.dispatcher.Apply(message.SetField{Field: name, Value: value})
		}
	}
	m.syncInputs()
	m.registerHandlers()
	return m
}

// Init opens the initial window and starts listening for host closes.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.dispatch(message.RequestOpen{Purpose: message.PurposeMain, Initial: true})}
	if m.events != nil {
		cmds = append(cmds, waitForHostEvent(m.events))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(hostEventMsg{}):      m.handleHostEventMsg,
		reflect.TypeOf(hostDoneMsg{}):       m.handleHostDoneMsg,
	}
	for _, sample := range []message.Msg{
		message.RequestOpen{},
		message.Opened{},
		message.OpenFailed{},
		message.Closed{},
		message.NavigateTo{},
		message.About{},
		message.Chat{},
		message.Settings{},
		message.SetField{},
	} {
		m.handlers[reflect.TypeOf(sample)] = m.handleSessionMsg
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Focused returns the window currently shown.
func (m *Model) Focused() window.ID {
	return m.focused
}
