package auth

// Navigator sends the user agent to another location. In a browser this is a
// full page navigation; on the server it is an HTTP redirect. The current
// request is finished once Navigate has been called.
type Navigator interface {
	Navigate(target string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target string) error

func (f NavigatorFunc) Navigate(target string) error {
	return f(target)
}
