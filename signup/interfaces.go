package signup

import "context"

const (
	RouteProfile = "Profile"
	RouteLogin   = "Login"
)

type Storage interface {
	UserExists(ctx context.Context, email string) (bool, error)
	SaveUser(ctx context.Context, u User) error
}

type Navigator interface {
	GoBack()
	Navigate(route string)
	Replace(route string)
}

//Alerter shows a modal with a title, a message and the buttons that dismiss it
type Alerter interface {
	Alert(title, message string, buttons ...Button)
}

type Button struct {
	Label   string
	OnPress func()
}

//Pinger is implemented by storage backends that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r registerRequest) draft() Draft {
	return Draft{Name: r.Name, Email: r.Email, Password: r.Password, ConfirmPassword: r.ConfirmPassword}
}

type strengthRequest struct {
	Password string `json:"password"`
}
