package provider

import (
	"strings"

	"govex/classify"
	"govex/enums"
	"govex/models"
	"govex/util"

	"github.com/pkg/errors"
)

const outcomeTextLimit = 300

// outcome is the final error one provider produced for a URL.
type outcome struct {
	provider string
	err      error
}

// AggregateError merges every provider's final failure into one
// user-facing, suggestion-bearing message. Building it is
// deterministic given the same outcomes in the same order.
type AggregateError struct {
	Outcomes []outcome
	message  string
}

func (e *AggregateError) Error() string {
	return e.message
}

func aggregate(outcomes []outcome) error {
	if len(outcomes) == 0 {
		return &AggregateError{
			message: "no extraction provider is configured or reachable\n\n" +
				"Suggestions:\n- install yt-dlp or configure YTDLP_SERVICE_URL",
		}
	}

	if bot := findBotDetection(outcomes); bot != nil {
		return &AggregateError{
			Outcomes: outcomes,
			message:  botDetectionMessage(),
		}
	}

	var b strings.Builder
	b.WriteString("video extraction failed\n")
	for _, o := range outcomes {
		text := util.Truncate(util.FirstLines(o.err.Error(), 2), outcomeTextLimit)
		b.WriteString("\n[" + o.provider + "] " + text)
	}
	b.WriteString("\n\nSuggestions:")
	for _, s := range genericSuggestions(outcomes) {
		b.WriteString("\n- " + s)
	}
	return &AggregateError{
		Outcomes: outcomes,
		message:  b.String(),
	}
}

func findBotDetection(outcomes []outcome) *models.ParsedError {
	for _, o := range outcomes {
		var parsed *models.ParsedError
		if errors.As(o.err, &parsed) && parsed.Kind == enums.ErrorKindBotDetection {
			return parsed
		}
	}
	return nil
}

// botDetectionMessage is the friendlier wall-specific explanation.
// Bot walls are the most common real-world failure and respond to
// specific remediation, so they never get the generic treatment.
func botDetectionMessage() string {
	var b strings.Builder
	b.WriteString("The platform is currently blocking automated access to this video.\n")
	b.WriteString("This usually passes, and cookies from a signed-in browser session resolve it reliably.\n")
	b.WriteString("\nSuggestions:")
	for _, s := range classify.Suggestions(enums.ErrorKindBotDetection) {
		b.WriteString("\n- " + s)
	}
	return b.String()
}

func genericSuggestions(outcomes []outcome) []string {
	suggestions := []string{
		"verify the video URL is correct and publicly viewable",
		"try again in a few minutes",
	}
	for _, o := range outcomes {
		var parsed *models.ParsedError
		if errors.As(o.err, &parsed) && len(parsed.Suggestions) > 0 {
			// lead with the most specific advice we have
			return append(parsed.Suggestions, suggestions...)
		}
	}
	return suggestions
}
