package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the survey question icon to "-" so survey prompts line
// up with the huh ones.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
