package bootstrap

import (
	"guardian/internal/config"
	"guardian/internal/logging"
	"guardian/internal/providers/slack"
	"guardian/internal/rules"
	"guardian/internal/server"
	"guardian/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Tracker *usecase.Tracker
	Server  *server.Server
	Config  config.Config
}

// Build wires all backend dependencies for the current runtime.
func Build() (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	classifier, err := rules.NewClassifier(cfg.Rules.KeywordsPath)
	if err != nil {
		return Services{}, err
	}

	notifier := slack.NewNotifier(slack.Config{
		WebhookURL: cfg.Slack.WebhookURL,
		Timeout:    cfg.Slack.Timeout,
	}, logging.Component("slack"))

	tracker := usecase.NewTracker(classifier, notifier, logging.Component("tracker"))
	srv := server.New(tracker, logging.Component("http"))

	return Services{Tracker: tracker, Server: srv, Config: cfg}, nil
}
