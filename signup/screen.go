package signup

import "sync"

//Notice is an alert as it was raised by the form.
type Notice struct {
	Title   string
	Message string
	Buttons []Button
}

//Screen records alerts and navigation so a Form can run without a UI. The HTTP
// handlers build one per request and turn what it captured into the response.
type Screen struct {
	mu      sync.Mutex
	notices []Notice
	route   string
	history []string
}

func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) Alert(title, message string, buttons ...Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Title: title, Message: message, Buttons: buttons})
}

func (s *Screen) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.history); n > 0 {
		s.route = s.history[n-1]
		s.history = s.history[:n-1]
		return
	}
	s.route = ""
}

func (s *Screen) Navigate(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, s.route)
	s.route = route
}

//Replace swaps the current route without pushing history, so GoBack skips it.
func (s *Screen) Replace(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = route
}

func (s *Screen) Route() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

//Last returns the most recent alert.
func (s *Screen) Last() (Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.notices) == 0 {
		return Notice{}, false
	}
	return s.notices[len(s.notices)-1], true
}

//Acknowledge presses the first button of the most recent alert.
func (s *Screen) Acknowledge() {
	n, ok := s.Last()
	if !ok || len(n.Buttons) == 0 || n.Buttons[0].OnPress == nil {
		return
	}
	n.Buttons[0].OnPress()
}
