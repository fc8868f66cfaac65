package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"sales-insight-backend/config"
	"sales-insight-backend/internal/datastore"
	"sales-insight-backend/internal/dto"
	"sales-insight-backend/internal/service"
)

// salesctl inspects a sales data file without starting the HTTP server.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("salesctl failed")
	}
}

func newApp() *cli.App {
	dataFlag := &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "path to the sales data JSON file",
		Value:   "./dummyData.json",
		EnvVars: []string{"DATA_FILE_PATH"},
	}
	questionFlag := &cli.StringFlag{
		Name:     "question",
		Aliases:  []string{"q"},
		Usage:    "question to ask about the data",
		Required: true,
	}

	return &cli.App{
		Name:  "salesctl",
		Usage: "inspect sales data and the prompts built from it",
		Commands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "print the aggregate statistics as JSON",
				Flags:  []cli.Flag{dataFlag},
				Action: runSummary,
			},
			{
				Name:   "prompt",
				Usage:  "print the LLM user message for a question without sending it",
				Flags:  []cli.Flag{dataFlag, questionFlag},
				Action: runPrompt,
			},
			{
				Name:   "ask",
				Usage:  "send a question to the configured LLM and print the answer",
				Flags:  []cli.Flag{dataFlag, questionFlag},
				Action: runAsk,
			},
		},
	}
}

func runSummary(c *cli.Context) error {
	store, err := datastore.Load(c.String("data"))
	if err != nil {
		return err
	}
	summary, err := service.Summarize(store.SalesReps())
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(dto.NewSalesSummaryResponse(summary), "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}

func runPrompt(c *cli.Context) error {
	store, err := datastore.Load(c.String("data"))
	if err != nil {
		return err
	}
	summary, err := service.Summarize(store.SalesReps())
	if err != nil {
		return err
	}

	prompt, err := service.BuildContext(summary, store.RawSalesReps(), c.String("question"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, prompt)
	return err
}

func runAsk(c *cli.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	store, err := datastore.Load(c.String("data"))
	if err != nil {
		return err
	}

	insights := service.NewInsightService(store, service.NewOpenAILLMService(cfg))
	answer, err := insights.AnswerQuestion(c.Context, c.String("question"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, answer)
	return err
}
