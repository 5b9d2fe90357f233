package advisor

import "errors"

// DefaultExamples returns the built-in prompts offered as shortcuts.
func DefaultExamples() []string {
	return []string{
		"I know HTML and CSS, but not much JavaScript.",
		"I like making mobile apps for Android.",
		"I'm curious about machine learning and data science.",
		"I want to deploy apps to the cloud with Docker.",
	}
}

// Session is the advisor's UI state: the current input, the last results,
// and the validation error from the last analysis attempt.
type Session struct {
	Input   string
	Results []Suggestion
	Err     error
}

// UpdateInput replaces the input and clears any error. It does not analyze.
func (s *Session) UpdateInput(text string) {
	s.Input = text
	s.Err = nil
}

// UseExample loads an example prompt as the input without analyzing it.
func (s *Session) UseExample(text string) {
	s.UpdateInput(text)
}

// Analyze matches the current input against c. Blank input sets Err and
// clears Results; anything else replaces Results and clears Err.
func (s *Session) Analyze(c *Catalog) {
	results, err := c.Match(s.Input)
	if err != nil {
		s.Err = err
		s.Results = nil
		return
	}
	s.Results = results
	s.Err = nil
}

// Reset clears the input and results. The error is left as is.
func (s *Session) Reset() {
	s.Input = ""
	s.Results = nil
}

// ErrorMessage returns the user-facing text for Err, or "" when there is none.
func (s Session) ErrorMessage() string {
	switch {
	case s.Err == nil:
		return ""
	case errors.Is(s.Err, ErrEmptyInput):
		return EmptyInputMessage
	default:
		return s.Err.Error()
	}
}
